package main

import (
	"os"

	"github.com/msto63/goinglogging/cmd/gl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
