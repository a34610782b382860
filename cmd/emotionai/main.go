// Package main is the entry point for the emotionai CLI.
package main

import (
	"os"

	"github.com/f3rmion/emotionai/cmd/emotionai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
