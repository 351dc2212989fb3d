package main

import (
	"os"

	"github.com/grovetools/tocfmt/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
