package main

import (
	"os"

	"github.com/Adda-Baaj/cielo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
