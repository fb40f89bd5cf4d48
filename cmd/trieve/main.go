package main

import (
	"os"

	"github.com/devflowinc/trieve-CLI/internal/command"
)

func main() {
	rootCmd := command.New()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
