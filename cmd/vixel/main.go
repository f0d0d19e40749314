// Command vixel runs the sandbox in an OpenGL window.
package main

import (
	"vixel/internal/config"
	"vixel/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("vixel: %v", err)
	}
	game.RunDesktop(cfg)
}
