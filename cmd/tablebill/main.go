package main

import (
	"os"

	"github.com/tablebill/tablebill/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
