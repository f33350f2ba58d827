package main

import (
	"os"

	"qrand/cmd/qrand/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
