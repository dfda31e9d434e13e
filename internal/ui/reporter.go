package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reporter surfaces operation outcomes and asks for confirmation. Writers
// and reader are injected so commands stay testable without a terminal.
type Reporter struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader
}

// NewReporter wires a reporter to the process streams.
func NewReporter() *Reporter {
	return &Reporter{Out: os.Stdout, Err: os.Stderr, In: os.Stdin}
}

// Success prints a green check line.
func (r *Reporter) Success(msg string) {
	fmt.Fprintln(r.Out, SuccessStyle.Render("✔ "+msg))
}

// Error prints a red cross line to the error stream.
func (r *Reporter) Error(msg string) {
	fmt.Fprintln(r.Err, ErrorStyle.Render("✖ "+msg))
}

// Info prints a muted informational line.
func (r *Reporter) Info(msg string) {
	fmt.Fprintln(r.Out, MutedStyle.Render(msg))
}

// Warn prints a highlighted warning line.
func (r *Reporter) Warn(msg string) {
	fmt.Fprintln(r.Out, WarnStyle.Render(msg))
}

// Confirm asks a yes/no question and reads one line of input.
// Only "y" or "yes" (any case) count as yes.
func (r *Reporter) Confirm(prompt string) bool {
	fmt.Fprintf(r.Out, "%s (y/n): ", prompt)
	scanner := bufio.NewScanner(r.In)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
