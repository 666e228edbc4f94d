package visitor

// SizeCalculator sums the sizes of every file it visits.
// Use a fresh calculator per traversal.
type SizeCalculator struct {
	total int64
}

// NewSizeCalculator returns a calculator with a zero total.
func NewSizeCalculator() *SizeCalculator {
	return &SizeCalculator{}
}

// VisitFile adds the file size to the running total.
func (s *SizeCalculator) VisitFile(f *File) error {
	s.total += f.size
	return nil
}

// VisitFolder contributes nothing itself and recurses into the children.
func (s *SizeCalculator) VisitFolder(f *Folder) error {
	return f.AcceptChildren(s)
}

// Total returns the accumulated size.
func (s *SizeCalculator) Total() int64 {
	return s.total
}

// TotalSize runs a new SizeCalculator over root and returns its total.
func TotalSize(root Element) int64 {
	calc := NewSizeCalculator()
	_ = root.Accept(calc)
	return calc.Total()
}
