package main

import (
	"os"

	"github.com/club19-dev/ledgerlift/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
