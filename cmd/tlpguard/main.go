package main

import (
	"os"

	"github.com/contextsec/tlpguard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
