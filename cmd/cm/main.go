// Package main is the entry point for the cm CLI.
package main

import (
	"os"

	"github.com/richhaase/context-monkey/cmd/cm/commands"
	"github.com/richhaase/context-monkey/internal/errors"
)

func main() {
	os.Exit(errors.ExitCode(commands.Execute()))
}
