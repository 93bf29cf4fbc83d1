// Package main provides the tubegen CLI.
//
// Usage:
//
//	tubegen [flags] <command>
//
// Commands:
//
//	build   - Generate the tube mesh and write it to the output file
//	info    - Print a summary of the generated mesh
//	markers - Write the control point debug markers as OBJ lines
//	watch   - Rebuild whenever the config file changes the tube shape
//
// Configuration is read from --config, ./tubegen.yaml or the user config
// directory, then overridden by flags.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/tubegen/cmd/tubegen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
