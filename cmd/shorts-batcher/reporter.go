package main

import (
	"fmt"
	"io"

	"shortsbatcher/internal/core/domain"
)

// consoleReporter prints progress lines for the operator.
type consoleReporter struct {
	w io.Writer
}

func newConsoleReporter(w io.Writer) *consoleReporter {
	return &consoleReporter{w: w}
}

func (r *consoleReporter) Progress(state domain.State, message string) {
	fmt.Fprintf(r.w, "[%s] %s\n", state, message)
}

func (r *consoleReporter) Alert(state domain.State, message string) {
	fmt.Fprintf(r.w, "[%s] !! %s\n", state, message)
}
