// Package monitoring holds the diagnostic logger shared by moonplot packages.
// Standard output is reserved for user-facing status lines, so diagnostics
// go to standard error.
package monitoring

import (
	"io"
	"log"
	"os"
)

// Prefix is prepended to every diagnostic line.
const Prefix = "moonplot: "

// Logf is the package-level diagnostic logger. It defaults to a standard
// error logger but may be replaced by SetLogger or SetOutput.
var Logf func(format string, v ...interface{}) = newLogger(os.Stderr).Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetOutput redirects diagnostics to w, keeping the standard prefix and flags.
func SetOutput(w io.Writer) {
	Logf = newLogger(w).Printf
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, Prefix, log.LstdFlags)
}
