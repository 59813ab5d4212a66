package main

import (
	"os"

	"github.com/msto63/tsmath/cmd/tsmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
