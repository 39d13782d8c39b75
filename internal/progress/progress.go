// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package progress renders advisory progress updates for long generation
// runs. Reporters never return errors: a display failure must not stop the
// run that is being reported on.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/pdiddy/passgen/pkg/types"
)

// Reporter receives periodic progress updates from the driver.
type Reporter interface {
	// Report announces that current of total items are done.
	Report(current, total int)

	// Finish closes out the display after the last update.
	Finish()
}

// New returns a reporter for the requested style writing to w. A bar on a
// writer that is not a terminal degrades to line output.
func New(style types.ProgressStyle, w io.Writer) Reporter {
	switch style {
	case types.ProgressNone:
		return Nop{}
	case types.ProgressBar:
		if isTerminal(w) {
			return NewBar(w)
		}
	}
	return NewLines(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Nop discards every update.
type Nop struct{}

func (Nop) Report(int, int) {}
func (Nop) Finish() {}

// Lines writes one status line per update.
type Lines struct {
	w io.Writer
}

// NewLines returns a line reporter writing to w.
func NewLines(w io.Writer) *Lines {
	return &Lines{w: w}
}

func (l *Lines) Report(current, total int) {
	_, _ = fmt.Fprintf(l.w, "generated %d/%d\n", current, total)
}

func (l *Lines) Finish() {}

// Bar draws a terminal progress bar. The bar is created on the first
// update, when the total is known.
type Bar struct {
	w     io.Writer
	bar   *progressbar.ProgressBar
	total int
}

// NewBar returns a bar reporter drawing on w.
func NewBar(w io.Writer) *Bar {
	return &Bar{w: w}
}

func (b *Bar) Report(current, total int) {
	if b.bar == nil || total != b.total {
		b.total = total
		b.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(b.w),
			progressbar.OptionSetDescription("Generating"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetWidth(30),
		)
	}
	_ = b.bar.Set(current)
}

func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
	_, _ = fmt.Fprintln(b.w)
	b.bar = nil
}
