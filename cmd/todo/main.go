package main

import (
	"os"

	"github.com/agarwalharshit2050-bit/To-Do-List/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
