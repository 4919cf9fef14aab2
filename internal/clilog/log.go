// Package clilog is the CLI layer's only place that writes to
// stdout/stderr directly: every other package communicates through
// return values, errors, and the optional solver.Options.OnStep hook.
package clilog

import (
	"fmt"
	"os"
)

// VerboseEnabled gates Verbose output; set once from the root command's
// --verbose flag before any subcommand runs.
var VerboseEnabled = false

// Info prints an always-shown message to stdout.
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Verbose prints a message only when VerboseEnabled.
func Verbose(format string, args ...interface{}) {
	if VerboseEnabled {
		fmt.Println("[verbose] " + fmt.Sprintf(format, args...))
	}
}

// Error prints an always-shown message to stderr.
func Error(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, "error: "+fmt.Sprintf(format, args...))
}
