package visitor

import (
	"fmt"
	"io"
)

// Options tunes the visitor demo output.
type Options struct {
	IndentStep int
	Encoder    RecordEncoder
}

// ExampleTree builds docs{a.txt(10), b.txt(20), logs{c.log(15)}}.
func ExampleTree() *Folder {
	logs := MustFolder("logs", MustFile("c.log", 15))
	return MustFolder("docs",
		MustFile("a.txt", 10),
		MustFile("b.txt", 20),
		logs,
	)
}

// Run applies the three visitors to the example tree in turn: size
// aggregation, indented names, then per-element records.
func Run(w io.Writer, opts Options) error {
	root := ExampleTree()

	sizes := NewSizeCalculator()
	if err := root.Accept(sizes); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "📦 Total file size: %d KB\n", sizes.Total()); err != nil {
		return err
	}

	if err := root.Accept(NewNamePrinter(w, opts.IndentStep)); err != nil {
		return fmt.Errorf("print names: %w", err)
	}

	if err := root.Accept(NewRecordEmitter(w, opts.Encoder)); err != nil {
		return fmt.Errorf("emit records: %w", err)
	}
	return nil
}
