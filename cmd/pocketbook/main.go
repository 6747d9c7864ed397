package main

import (
	"os"

	"github.com/pocketbook-dev/pocketbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
