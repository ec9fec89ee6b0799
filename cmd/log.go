package cmd

import (
	"log"

	"github.com/fatih/color"
)

func init() {
	// Route the standard logger through the color-aware standard error stream
	// so that colorized warnings and errors render on all platforms.
	log.SetOutput(color.Error)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
