package main

import (
	"os"

	"github.com/conquest-php/assemble/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
