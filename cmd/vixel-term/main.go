// Command vixel-term runs the sandbox in a terminal.
package main

import (
	"vixel/internal/config"
	"vixel/internal/term"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("vixel-term: %v", err)
	}
	if err := term.RunTerminal(cfg); err != nil {
		config.Exitf("vixel-term: %v", err)
	}
}
