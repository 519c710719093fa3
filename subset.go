package heredity

import "math/bits"

// Subset is a set of people, as a bit pattern over pedigree indices: bit i is
// set when person i is a member.
type Subset uint64

// Full returns the subset holding people 0 through n-1.
func Full(n int) Subset {
	return Subset(1)<<uint(n) - 1
}

// Has reports whether person i is a member.
func (s Subset) Has(i int) bool {
	return s&(1<<uint(i)) != 0
}

// With returns s with person i added.
func (s Subset) With(i int) Subset {
	return s | 1<<uint(i)
}

// Count is the number of members.
func (s Subset) Count() int {
	return bits.OnesCount64(uint64(s))
}

// submasks walks every subset of a mask in descending numeric order, from
// the mask itself down to the empty set. Via
// https://cp-algorithms.com/algebra/all-submasks.html
type submasks struct {
	mask    Subset
	current Subset
}

func newSubmasks(mask Subset) submasks {
	return submasks{mask: mask, current: mask}
}

// Next moves to the next smaller subset. It returns false once the empty set
// has already been visited.
func (m *submasks) Next() bool {
	if m.current == 0 {
		return false
	}
	m.current = (m.current - 1) & m.mask
	return true
}

// Reset rewinds to a new mask.
func (m *submasks) Reset(mask Subset) {
	m.mask = mask
	m.current = mask
}
