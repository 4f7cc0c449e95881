package main

import (
	"os"

	"estructura/cmd/estructura/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
