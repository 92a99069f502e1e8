// Package main is the entry point for the ecy CLI client.
package main

import (
	"github.com/donaldgifford/ecycle/cmd/ecy/cmd"
)

func main() {
	cmd.Execute()
}
