package main

import (
	"os"

	"github.com/prepdrill/prepdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
