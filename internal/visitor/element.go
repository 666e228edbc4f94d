// Package visitor demonstrates the Visitor pattern over a small file tree.
//
// The tree is made of two element kinds, File (leaf) and Folder (ordered
// composite). Each element forwards Accept to the visitor method matching
// its own kind; recursion into a folder's children is left to the visitor,
// which is what gives every traversal its depth-first pre-order shape:
//
//	root := visitor.MustFolder("docs",
//	    visitor.MustFile("a.txt", 10),
//	    visitor.MustFolder("logs", visitor.MustFile("c.log", 15)),
//	)
//	calc := visitor.NewSizeCalculator()
//	_ = root.Accept(calc)
//	fmt.Println(calc.Total()) // 25
//
// Trees are immutable once built. Construction rejects negative sizes,
// invalid names and any element instance that would appear twice in the
// same tree, so traversals always terminate.
package visitor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Construction errors.
var (
	ErrNegativeSize = errors.New("file size must be non-negative")
	ErrInvalidName  = errors.New("invalid element name")
	ErrNilChild     = errors.New("folder child must not be nil")
	ErrSharedNode   = errors.New("element appears more than once in the tree")
)

// Element is a node of the file tree that can accept a Visitor.
// The set of elements is closed: only File and Folder implement it.
type Element interface {
	Accept(v Visitor) error
	element()
}

// File is a leaf element with a size in KB.
type File struct {
	name string
	size int64
}

// NewFile creates a file element. The size must be non-negative.
func NewFile(name string, size int64) (*File, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, fmt.Errorf("file %q: %w (got %d)", name, ErrNegativeSize, size)
	}
	return &File{name: name, size: size}, nil
}

// MustFile is like NewFile but panics on error. Meant for literal data.
func MustFile(name string, size int64) *File {
	f, err := NewFile(name, size)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the file name.
func (f *File) Name() string { return f.name }

// Size returns the file size.
func (f *File) Size() int64 { return f.size }

// Accept dispatches to v.VisitFile.
func (f *File) Accept(v Visitor) error { return v.VisitFile(f) }

func (f *File) element() {}

// Folder is a composite element holding an ordered list of children.
type Folder struct {
	name     string
	children []Element
}

// NewFolder creates a folder owning the given children in order.
// Every element instance may occur only once across the whole subtree.
func NewFolder(name string, children ...Element) (*Folder, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	seen := make(map[Element]struct{})
	for i, child := range children {
		if isNil(child) {
			return nil, fmt.Errorf("folder %q child %d: %w", name, i, ErrNilChild)
		}
		err := Walk(child,
			func(f *File, _ int) error { return markSeen(seen, f, f.name) },
			func(f *Folder, _ int) error { return markSeen(seen, f, f.name) },
		)
		if err != nil {
			return nil, fmt.Errorf("folder %q: %w", name, err)
		}
	}

	owned := make([]Element, len(children))
	copy(owned, children)
	return &Folder{name: name, children: owned}, nil
}

// MustFolder is like NewFolder but panics on error. Meant for literal data.
func MustFolder(name string, children ...Element) *Folder {
	f, err := NewFolder(name, children...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the folder name.
func (f *Folder) Name() string { return f.name }

// Children returns a copy of the folder's children in order.
func (f *Folder) Children() []Element {
	out := make([]Element, len(f.children))
	copy(out, f.children)
	return out
}

// Len returns the number of direct children.
func (f *Folder) Len() int { return len(f.children) }

// Accept dispatches to v.VisitFolder. It does not recurse.
func (f *Folder) Accept(v Visitor) error { return v.VisitFolder(f) }

// AcceptChildren calls Accept on each child in order with the same visitor,
// stopping at the first error.
func (f *Folder) AcceptChildren(v Visitor) error {
	for _, child := range f.children {
		if err := child.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

func (f *Folder) element() {}

func markSeen(seen map[Element]struct{}, e Element, name string) error {
	if _, dup := seen[e]; dup {
		return fmt.Errorf("%q: %w", name, ErrSharedNode)
	}
	seen[e] = struct{}{}
	return nil
}

func isNil(e Element) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *File:
		return v == nil
	case *Folder:
		return v == nil
	}
	return false
}

// validateName accepts a single path segment: not empty, no separators,
// not "." or "..".
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) || filepath.IsAbs(name) {
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidName, name)
	}
	return nil
}
