package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the run-time settings shared by both front-ends.
type Config struct {
	Seed       uint64  `env:"VIXEL_SEED"        envDefault:"0"`
	Assets     string  `env:"VIXEL_ASSETS"      envDefault:"assets"`
	Width      int     `env:"VIXEL_WIDTH"       envDefault:"160"`
	Height     int     `env:"VIXEL_HEIGHT"      envDefault:"90"`
	PixelSize  int     `env:"VIXEL_PIXEL_SIZE"  envDefault:"8"`
	TickMillis int     `env:"VIXEL_TICK_MS"     envDefault:"10"`
	StartLevel int     `env:"VIXEL_START_LEVEL" envDefault:"0"`
	Mute       bool    `env:"VIXEL_MUTE"        envDefault:"false"`
	SFXVolume  float64 `env:"VIXEL_SFX_VOLUME"  envDefault:"0.8"`
}

// ParseEnv fills target from the environment.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads and validates Config. A zero seed is replaced by the clock.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if c.PixelSize <= 0 {
		errs = append(errs, fmt.Errorf("pixel size %d must be positive", c.PixelSize))
	}
	if c.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("tick period %dms must be positive", c.TickMillis))
	}
	if c.StartLevel < 0 {
		errs = append(errs, fmt.Errorf("start level %d is negative", c.StartLevel))
	}
	if c.SFXVolume < 0 || c.SFXVolume > 1 {
		errs = append(errs, fmt.Errorf("sfx volume %.2f outside [0,1]", c.SFXVolume))
	}
	return errors.Join(errs...)
}

// Tick is the simulation step period.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
