// Package main is the entry point for the ecycle server.
package main

import (
	"os"

	"github.com/donaldgifford/ecycle/cmd/ecycle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
