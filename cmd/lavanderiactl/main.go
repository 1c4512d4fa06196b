package main

import (
	"os"

	"github.com/MikeRez0/lavanderia/cmd/lavanderiactl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
