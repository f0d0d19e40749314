package session

import (
	"io"
	"io/fs"
	"os"
	"path"

	"vixel/internal/config"
	"vixel/internal/level"
	"vixel/internal/sim"
)

// LevelDir is the asset subdirectory holding level images and the
// disabled-materials table.
const LevelDir = "levels"

// Open builds a session from configuration, reading levels from cfg.Assets.
func Open(cfg config.Config, bus *sim.EventBus, warn io.Writer) *Session {
	return OpenFS(cfg, os.DirFS(cfg.Assets), bus, warn)
}

// OpenFS is Open over an arbitrary asset filesystem.
func OpenFS(cfg config.Config, assets fs.FS, bus *sim.EventBus, warn io.Writer) *Session {
	if warn == nil {
		warn = os.Stderr
	}
	table, err := level.LoadDisabled(assets, path.Join(LevelDir, level.DisabledName))
	if err != nil {
		warnf(warn, "disabled materials: %v", err)
	}
	return New(Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Levels:   level.NewLoader(assets, LevelDir, cfg.Width, cfg.Height),
		Disabled: table,
		Rand:     sim.NewRand(cfg.Seed),
		Bus:      bus,
		Start:    cfg.StartLevel,
		Warn:     warn,
	})
}
