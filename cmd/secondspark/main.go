// Package main is the entry point for the secondspark server.
package main

import (
	"os"

	"github.com/TravisBoyd884/SecondSpark/cmd/secondspark/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
