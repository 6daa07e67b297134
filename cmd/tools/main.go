package main

import (
	"os"

	"toolbox/cmd/tools/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
