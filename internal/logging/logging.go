// SPDX-License-Identifier: MIT
// Package logging builds the charmbracelet/log loggers used across the
// module so every component logs with the same prefix and format.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is attached to every log line.
const Prefix = "enigma"

// New returns a logger writing to w. debug lowers the level from Warn to Debug.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: debug,
	})
}

// Default returns the stderr logger used when no logger is injected.
func Default() *log.Logger { return New(os.Stderr, false) }

// Discard returns a logger that drops everything.
func Discard() *log.Logger { return log.New(io.Discard) }
