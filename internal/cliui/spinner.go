// Package cliui wraps github.com/briandowns/spinner with the
// start/stop/log-without-tearing behavior the CLI commands need while
// a potentially slow solve runs in the background.
package cliui

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/katalvlaran/nonogram/internal/clilog"
)

// Spinner shows solve progress; suppressed entirely under --verbose,
// where clilog.Verbose output would otherwise tear against it.
type Spinner struct {
	s *spinner.Spinner
}

// New returns a spinner with the given suffix message, not yet
// started.
func New(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start starts the spinner, unless clilog.VerboseEnabled.
func (sp *Spinner) Start() {
	if !clilog.VerboseEnabled {
		sp.s.Start()
	}
}

// Stop stops the spinner.
func (sp *Spinner) Stop() {
	sp.s.Stop()
}
