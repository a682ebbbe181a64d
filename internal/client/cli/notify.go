package cli

import (
	"io"

	"github.com/fatih/color"
)

type colorNotifier struct {
	out     io.Writer
	info    *color.Color
	success *color.Color
	failure *color.Color
}

func newColorNotifier(out io.Writer) *colorNotifier {
	return &colorNotifier{
		out:     out,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (n *colorNotifier) Info(msg string)    { n.info.Fprintln(n.out, msg) }
func (n *colorNotifier) Success(msg string) { n.success.Fprintln(n.out, msg) }
func (n *colorNotifier) Error(msg string)   { n.failure.Fprintln(n.out, msg) }
