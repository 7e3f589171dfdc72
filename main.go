package main

import (
	"os"

	"github.com/cardcycle/cardcycle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
