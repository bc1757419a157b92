package main

import (
	"os"

	"github.com/brighted/nable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
