package main

import (
	"os"

	"github.com/fitscope/fitscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
