// Package ui prints colored status messages for solarreport commands.
// Output goes to stderr and respects the NO_COLOR environment variable and
// TTY detection, so reports written to stdout stay free of escape codes.
package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes colored status lines to a writer.
type Printer struct {
	output  io.Writer
	success *color.Color
	warning *color.Color
	failure *color.Color
	info    *color.Color
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithNoColor disables colors regardless of the terminal.
func WithNoColor() PrinterOption {
	return func(p *Printer) {
		for _, c := range p.colors() {
			c.DisableColor()
		}
	}
}

// WithColor forces colors on regardless of the terminal.
func WithColor() PrinterOption {
	return func(p *Printer) {
		for _, c := range p.colors() {
			c.EnableColor()
		}
	}
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		output:  w,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
		info:    color.New(color.FgCyan),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Printer) colors() []*color.Color {
	return []*color.Color{p.success, p.warning, p.failure, p.info}
}

// Success prints a green message.
func (p *Printer) Success(format string, args ...any) {
	_, _ = p.success.Fprintf(p.output, format, args...)
}

// Warning prints a yellow message.
func (p *Printer) Warning(format string, args ...any) {
	_, _ = p.warning.Fprintf(p.output, format, args...)
}

// Error prints a red message.
func (p *Printer) Error(format string, args ...any) {
	_, _ = p.failure.Fprintf(p.output, format, args...)
}

// Info prints a cyan message.
func (p *Printer) Info(format string, args ...any) {
	_, _ = p.info.Fprintf(p.output, format, args...)
}

// Stderr returns a Printer writing to os.Stderr.
func Stderr() *Printer {
	return NewPrinter(os.Stderr)
}

// Error prints a red-colored message to stderr.
func Error(format string, args ...any) {
	Stderr().Error(format, args...)
}
