package main

import (
	"os"

	"github.com/katalvlaran/nilhecke/cmd/nilhecke/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
