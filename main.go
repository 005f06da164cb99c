package main

import (
	"os"

	"loan-simulator/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
