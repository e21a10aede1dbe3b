package main

import (
	"os"

	"github.com/dockhand/dockhand/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
