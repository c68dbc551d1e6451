package main

import (
	"os"

	"github.com/carlyclark26/PharmC-Quiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
