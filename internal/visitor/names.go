package visitor

import (
	"fmt"
	"io"
	"strings"
)

// DefaultIndentStep is the number of spaces added per nesting level.
const DefaultIndentStep = 2

// NamePrinter writes one line per element, indented by its depth:
//
//	📁 Folder: docs
//	  📄 File: a.txt
type NamePrinter struct {
	w      io.Writer
	step   int
	indent int
}

// NewNamePrinter creates a printer writing to w. A step <= 0 falls back
// to DefaultIndentStep.
func NewNamePrinter(w io.Writer, step int) *NamePrinter {
	if step <= 0 {
		step = DefaultIndentStep
	}
	return &NamePrinter{w: w, step: step}
}

// VisitFile prints the file line at the current indent.
func (p *NamePrinter) VisitFile(f *File) error {
	_, err := fmt.Fprintf(p.w, "%s📄 File: %s\n", p.pad(), f.name)
	return err
}

// VisitFolder prints the folder line, then its children one step deeper.
func (p *NamePrinter) VisitFolder(f *Folder) error {
	if _, err := fmt.Fprintf(p.w, "%s📁 Folder: %s\n", p.pad(), f.name); err != nil {
		return err
	}
	p.indent += p.step
	err := f.AcceptChildren(p)
	p.indent -= p.step
	return err
}

func (p *NamePrinter) pad() string {
	return strings.Repeat(" ", p.indent)
}
