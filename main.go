package main

import (
	"os"

	"github.com/GRCJP/assurit-test-simulator-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
