// Package main is the entry point for the sparkctl CLI client.
package main

import (
	"github.com/TravisBoyd884/SecondSpark/cmd/sparkctl/cmd"
)

func main() {
	cmd.Execute()
}
