package hanoi

import (
	"fmt"
	"strings"
)

// PegID identifies one of the three pegs.
type PegID string

const (
	PegA PegID = "A"
	PegB PegID = "B"
	PegC PegID = "C"
)

// ParsePegID parses a peg identifier. It accepts upper or lower case.
func ParsePegID(s string) (PegID, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return PegA, nil
	case "B":
		return PegB, nil
	case "C":
		return PegC, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeg, s)
}

// Peg is an ordered stack of discs. The top of the peg is the last element.
//
// The size-ordering invariant (every disc strictly smaller than the one
// below it) is enforced inside TryPush; no other code path adds a disc, so
// the invariant holds after every mutation.
type Peg struct {
	id       PegID
	capacity int
	discs    []Disc
}

// NewPeg creates an empty peg with the given identity and capacity.
func NewPeg(id PegID, capacity int) *Peg {
	return &Peg{
		id:       id,
		capacity: capacity,
		discs:    make([]Disc, 0, capacity),
	}
}

// ID returns the peg identifier.
func (p *Peg) ID() PegID {
	return p.id
}

// Capacity returns the maximum number of discs the peg can hold.
func (p *Peg) Capacity() int {
	return p.capacity
}

// TryPush places a disc on top of the peg. It returns false without
// mutating the peg if the disc has no valid size, the peg is full, or the
// disc would rest on a smaller one.
func (p *Peg) TryPush(d Disc) bool {
	if d.size < 1 {
		return false
	}
	if len(p.discs) >= p.capacity {
		return false
	}
	if !d.CanStackOn(p.Peek()) {
		return false
	}
	p.discs = append(p.discs, d)
	return true
}

// TryPop removes and returns the top disc, or nil if the peg is empty.
// An empty pop is not an error; absence is the signaled condition.
func (p *Peg) TryPop() *Disc {
	if len(p.discs) == 0 {
		return nil
	}
	d := p.discs[len(p.discs)-1]
	p.discs = p.discs[:len(p.discs)-1]
	return &d
}

// Peek returns the top disc without removing it, or nil if the peg is
// empty. The returned disc is a copy; mutating it cannot affect the peg.
func (p *Peg) Peek() *Disc {
	if len(p.discs) == 0 {
		return nil
	}
	d := p.discs[len(p.discs)-1]
	return &d
}

// IsEmpty reports whether the peg holds no discs.
func (p *Peg) IsEmpty() bool {
	return len(p.discs) == 0
}

// IsFull reports whether the peg is at capacity.
func (p *Peg) IsFull() bool {
	return len(p.discs) >= p.capacity
}

// Count returns the number of discs on the peg.
func (p *Peg) Count() int {
	return len(p.discs)
}

// CanMoveTo reports whether the top disc of this peg may legally move to
// target: the peg must be non-empty, the target not full, and the moving
// disc must fit on the target's top disc.
func (p *Peg) CanMoveTo(target *Peg) bool {
	if target == nil || p.IsEmpty() || target.IsFull() {
		return false
	}
	return p.Peek().CanStackOn(target.Peek())
}

// Clear removes all discs unconditionally.
func (p *Peg) Clear() {
	p.discs = p.discs[:0]
}

// Discs returns a snapshot of the peg contents from bottom to top.
func (p *Peg) Discs() []Disc {
	out := make([]Disc, len(p.discs))
	copy(out, p.discs)
	return out
}

func (p *Peg) String() string {
	if len(p.discs) == 0 {
		return fmt.Sprintf("peg %s: empty", p.id)
	}
	sizes := make([]string, len(p.discs))
	for i, d := range p.discs {
		sizes[i] = fmt.Sprintf("%d", d.size)
	}
	return fmt.Sprintf("peg %s: [%s]", p.id, strings.Join(sizes, " "))
}
