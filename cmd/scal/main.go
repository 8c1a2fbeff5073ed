package main

import (
	"os"

	"github.com/Armin-kho/scal/internal/cli"
)

func main() {
	// cobra already printed the error; just map it to the exit code.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
