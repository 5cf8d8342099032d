package main

import (
	"os"

	"github.com/ugaemi/graphfight-server/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
