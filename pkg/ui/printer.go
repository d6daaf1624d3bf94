// Package ui renders red-panda's progress output.
//
// Progress is a shallow tree, the same shape on a terminal and in a log:
//
//	[O] Inviting some red pandas into the /srv/env directory
//	 |- Downloading neovim configuration into /srv/env/red-panda-hollow/configurations-neovim
//	    |- Triggering install script...
//	    |- >> exit status 0
//
// On a terminal each level gets a semantic style; otherwise output is plain.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bjk2k/red-panda/pkg/types"
	"github.com/bjk2k/red-panda/pkg/ui/styles"
)

// Tree prefixes
const (
	StepPrefix   = "[O] "
	DetailPrefix = " |- "
	NotePrefix   = "    |- "
)

// Printer writes progress to an io.Writer
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	styled bool
}

// NewPrinter creates a Printer. FormatAuto is resolved against out.
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{
		out:    out,
		styled: format.Resolve(out) == FormatTerminal,
	}
}

func (p *Printer) Step(format string, args ...any) {
	p.line("Step", StepPrefix+fmt.Sprintf(format, args...))
}

func (p *Printer) Detail(format string, args ...any) {
	p.line("Detail", DetailPrefix+fmt.Sprintf(format, args...))
}

func (p *Printer) Note(format string, args ...any) {
	p.line("Note", NotePrefix+fmt.Sprintf(format, args...))
}

// Output relays captured process output, one line at a time.
func (p *Printer) Output(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	for _, l := range strings.Split(text, "\n") {
		p.line("Output", l)
	}
}

// Success prints a closing line.
func (p *Printer) Success(format string, args ...any) {
	p.line("Success", fmt.Sprintf(format, args...))
}

// Warning prints a line that does not stop the run.
func (p *Printer) Warning(format string, args ...any) {
	p.line("Warning", fmt.Sprintf(format, args...))
}

// Feature prints one row of the feature listing.
func (p *Printer) Feature(name, description string, verbose bool) {
	row := NotePrefix + p.render("Feature", name)
	if verbose && description != "" {
		row += "  " + p.render("Description", description)
	}
	p.raw(row)
}

// Raw writes text unchanged.
func (p *Printer) Raw(text string) {
	p.raw(strings.TrimRight(text, "\n"))
}

func (p *Printer) line(style, text string) {
	p.raw(p.render(style, text))
}

func (p *Printer) render(style, text string) string {
	if !p.styled {
		return text
	}
	return styles.GetStyle(style).Render(text)
}

func (p *Printer) raw(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.out, text)
}

// Verify interface compliance
var _ types.Reporter = (*Printer)(nil)
