package visitor

import "errors"

// Visitor has one operation per element kind. VisitFolder is responsible
// for recursing into the folder's children, usually via AcceptChildren.
type Visitor interface {
	VisitFile(f *File) error
	VisitFolder(f *Folder) error
}

// SkipChildren may be returned by a Walk folder callback to skip the
// folder's descendants. It is never returned by Walk itself.
var SkipChildren = errors.New("skip folder children")

// Walk traverses root depth-first in pre-order, calling onFile for every
// file and onFolder for every folder before its descendants. depth is 0 at
// the root. Either callback may be nil. The first non-nil error other than
// SkipChildren stops the walk and is returned.
func Walk(root Element, onFile func(f *File, depth int) error, onFolder func(f *Folder, depth int) error) error {
	return root.Accept(&walker{onFile: onFile, onFolder: onFolder})
}

type walker struct {
	onFile   func(*File, int) error
	onFolder func(*Folder, int) error
	depth    int
}

func (w *walker) VisitFile(f *File) error {
	if w.onFile == nil {
		return nil
	}
	return w.onFile(f, w.depth)
}

func (w *walker) VisitFolder(f *Folder) error {
	if w.onFolder != nil {
		if err := w.onFolder(f, w.depth); err != nil {
			if errors.Is(err, SkipChildren) {
				return nil
			}
			return err
		}
	}
	w.depth++
	defer func() { w.depth-- }()
	return f.AcceptChildren(w)
}

// Count returns the number of elements in the tree, root included.
func Count(root Element) int {
	n := 0
	count := func() { n++ }
	_ = Walk(root,
		func(*File, int) error { count(); return nil },
		func(*Folder, int) error { count(); return nil },
	)
	return n
}
