package hanoi

import "fmt"

// Disc is a single puzzle piece. Its size is its identity: within one game
// every size appears exactly once, and a disc never changes after creation.
type Disc struct {
	size int
}

// NewDisc creates a disc of the given size. Size 1 is the smallest disc.
func NewDisc(size int) Disc {
	return Disc{size: size}
}

// Size returns the disc size.
func (d Disc) Size() int {
	return d.size
}

// CanStackOn reports whether the disc may rest on top of other.
// A nil other means an empty peg, which accepts any disc.
func (d Disc) CanStackOn(other *Disc) bool {
	if other == nil {
		return true
	}
	return d.size < other.size
}

func (d Disc) String() string {
	return fmt.Sprintf("disc %d", d.size)
}
