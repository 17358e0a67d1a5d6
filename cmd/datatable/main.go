package main

import (
	"os"

	"github.com/bjaus/datatable/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		return 1
	}
	return 0
}
