package main

import (
	"os"

	"github.com/prepnova/prepnova/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
