package logging

import (
	"io"

	"github.com/go-logr/logr"
)

// Verbosity levels passed to logr.Logger.V.
const (
	LEVEL_INFO  = 0
	LEVEL_DEBUG = 1
	LEVEL_TRACE = 2
)

// VerbosityFromFlags maps the usual -v / -vv style command line switches onto a verbosity level.
func VerbosityFromFlags(debug, trace bool) int {
	switch {
	case trace:
		return LEVEL_TRACE
	case debug:
		return LEVEL_DEBUG
	default:
		return LEVEL_INFO
	}
}

// NewLogger returns a logger writing to w at the given verbosity. A nil writer yields a discarding logger.
func NewLogger(w io.Writer, verbosity int, useColor bool) logr.Logger {
	if w == nil {
		return logr.Discard()
	}
	return NewSimpleLogger(w, verbosity, useColor)
}
