package components

// Item is the narrow contract a progress row needs from a batch entry.
// The richer domain entity (an estimate carries notes, timestamps and a
// review trail) stays outside this package.
type Item interface {
	ItemID() string
	DisplayName() string
}

// IndexSet tracks which item positions have been completed. Membership,
// not order, matters.
type IndexSet map[int]struct{}

// NewIndexSet builds a set from the provided indices.
func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// Add records an index as completed.
func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}

// Has reports whether the index is in the set.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Len returns the number of indices in the set.
func (s IndexSet) Len() int {
	return len(s)
}
