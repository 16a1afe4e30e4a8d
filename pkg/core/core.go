// Package core provides shared functionality for the text applets.
package core

import (
	"fmt"
	"io"
	"os"
)

// Exit codes. Usage errors share ExitFailure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Stdio holds the standard I/O streams for an applet.
// This allows for easy testing by injecting mock streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio configured with os.Stdin, os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// UsageError prints "applet: message" followed by the usage text and
// returns ExitFailure.
func UsageError(stdio *Stdio, applet, message, usage string) int {
	stdio.Errorf("%s: %s\n", applet, message)
	if usage != "" {
		stdio.Errorf("%s", usage)
	}
	return ExitFailure
}

// Usage prints the usage text to stderr and returns ExitSuccess.
func Usage(stdio *Stdio, usage string) int {
	stdio.Errorf("%s", usage)
	return ExitSuccess
}

// IOError prints a stream error and returns ExitFailure.
func IOError(stdio *Stdio, applet string, err error) int {
	stdio.Errorf("%s: %v\n", applet, err)
	return ExitFailure
}
