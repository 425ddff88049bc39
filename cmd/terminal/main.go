package main

import (
	"os"

	"github.com/thand-io/terminal/cmd/cli"
)

func main() {
	if err := cli.GetCommandOptions().Execute(); err != nil {
		os.Exit(1)
	}
}
