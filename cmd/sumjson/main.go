package main

import (
	"os"

	"github.com/kasiopea-org/sumjson/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
