package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

var (
	out    io.Writer = colorable.NewColorableStdout()
	errOut io.Writer = colorable.NewColorableStderr()

	// Each stream is colored only when it is a terminal
	colorOut = isTerminal(os.Stdout)
	colorErr = isTerminal(os.Stderr)
)

// SetOutput redirects normal and diagnostic output, disabling color
func SetOutput(stdout, stderr io.Writer) {
	out = stdout
	errOut = stderr
	colorOut = false
	colorErr = false
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func paint(symbol, style string, enabled bool) string {
	if !enabled {
		return symbol
	}
	return ansi.Color(symbol, style)
}

// Println prints a plain line
func Println(a ...any) {
	fmt.Fprintln(out, a...)
}

// Printf prints formatted plain output
func Printf(format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}

// Success prints a success message with checkmark
func Success(message string) {
	fmt.Fprintf(out, "%s %s\n", paint("✓", "green", colorOut), message)
}

// Error prints an error message to stderr
func Error(message string) {
	fmt.Fprintf(errOut, "%s %s\n", paint("✗", "red", colorErr), message)
}

// Info prints an info message
func Info(message string) {
	fmt.Fprintf(out, "%s %s\n", paint("ℹ", "cyan", colorOut), message)
}

// Warning prints a warning message
func Warning(message string) {
	fmt.Fprintf(out, "%s %s\n", paint("⚠", "yellow", colorOut), message)
}
