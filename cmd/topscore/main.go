package main

import (
	"os"

	"github.com/vartools/topscore/cmd/topscore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(2)
	}
}
