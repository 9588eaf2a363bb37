package main

import (
	"os"

	"github.com/mathmedha/medha/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
