package hanoi

import (
	"fmt"
	"time"
)

// Move records one completed transfer. Moves are immutable: the engine
// creates exactly one per successful transfer and never changes it.
type Move struct {
	From PegID     // Source peg
	To   PegID     // Destination peg
	Disc Disc      // The disc that moved
	Seq  int       // 1-based position in the game history
	Time time.Time // When the move was executed
}

// Notation returns the compact from/to form, e.g. "A>C".
func (m Move) Notation() string {
	return string(m.From) + ">" + string(m.To)
}

// String returns a human-readable description of the move.
func (m Move) String() string {
	return fmt.Sprintf("move %d: disc %d from %s to %s", m.Seq, m.Disc.Size(), m.From, m.To)
}
