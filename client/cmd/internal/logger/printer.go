package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer renders info, success and error banners for the operator.
type Printer struct {
	writer io.Writer
}

func NewPrinter() *Printer {
	return NewPrinterWithWriter(os.Stdout)
}

func NewPrinterWithWriter(w io.Writer) *Printer {
	return &Printer{writer: w}
}

func (p *Printer) Info(msg string, args ...interface{}) {
	p.write(color.New(color.FgCyan), msg, args...)
}

func (p *Printer) Success(msg string, args ...interface{}) {
	p.write(color.New(color.FgGreen), msg, args...)
}

func (p *Printer) Error(msg string, args ...interface{}) {
	p.write(color.New(color.FgRed), msg, args...)
}

// Plain writes without color, e.g. menus and prompts.
func (p *Printer) Plain(msg string, args ...interface{}) {
	fmt.Fprintf(p.writer, msg, args...)
}

// Print writes text as is, it is not used as a format.
func (p *Printer) Print(text string) {
	fmt.Fprint(p.writer, text)
}

func (p *Printer) Writer() io.Writer {
	return p.writer
}

func (p *Printer) write(c *color.Color, msg string, args ...interface{}) {
	plainMessage := fmt.Sprintf(msg, args...)
	c.Fprintln(p.writer, plainMessage)
}
