package hanoi

import (
	"fmt"
	"strings"
	"time"
)

// Supported disc-count range. The upper bound comes from the classic
// presentation of the puzzle; the engine itself only needs it to size pegs.
const (
	MinDiscs = 3
	MaxDiscs = 6
)

// Game orchestrates the three pegs: it validates and executes moves, runs
// the recursive auto-solution, accumulates history and notifies a
// registered observer after every successful move.
//
// A Game is a single-writer structure. It holds no lock; callers that share
// one instance across goroutines must serialize access themselves.
type Game struct {
	discCount int
	pegs      [3]*Peg
	history   []Move
	moveCount int
	solving   bool
	onMove    func(Move)
}

// New creates a game with discCount discs stacked on peg A, largest at the
// bottom. It returns ErrDiscCount if discCount is outside [3, 6].
func New(discCount int) (*Game, error) {
	if discCount < MinDiscs || discCount > MaxDiscs {
		return nil, fmt.Errorf("%w, got %d", ErrDiscCount, discCount)
	}

	g := &Game{discCount: discCount}
	for i, id := range []PegID{PegA, PegB, PegC} {
		g.pegs[i] = NewPeg(id, discCount)
	}
	g.placeDiscs()
	return g, nil
}

// placeDiscs stacks the discs on peg A, largest first so every push is a
// valid descending placement.
func (g *Game) placeDiscs() {
	for size := g.discCount; size >= 1; size-- {
		g.pegs[0].TryPush(NewDisc(size))
	}
}

// Reset returns the game to its initial configuration: full stack on peg A,
// empty history, zero move count. The registered observer is kept.
func (g *Game) Reset() {
	for _, p := range g.pegs {
		p.Clear()
	}
	g.placeDiscs()
	g.history = nil
	g.moveCount = 0
	g.solving = false
}

// OnMove registers the observer invoked synchronously after every
// successful move, including moves generated by Solve. Passing nil removes
// the observer. The callback must not mutate the game.
func (g *Game) OnMove(cb func(Move)) {
	g.onMove = cb
}

// MoveDisc transfers the top disc of from onto to. It returns false and
// leaves every peg unchanged if either peg is nil or the move is illegal
// (empty source, full destination, or size-rule violation).
func (g *Game) MoveDisc(from, to *Peg) bool {
	if from == nil || to == nil {
		return false
	}
	if !from.CanMoveTo(to) {
		return false
	}

	disc := from.TryPop()
	if disc == nil {
		return false
	}
	if !to.TryPush(*disc) {
		// CanMoveTo already vetted the push; restore the source so no
		// partial-move state is ever observable.
		from.TryPush(*disc)
		return false
	}

	g.moveCount++
	m := Move{
		From: from.ID(),
		To:   to.ID(),
		Disc: *disc,
		Seq:  g.moveCount,
		Time: time.Now(),
	}
	g.history = append(g.history, m)

	if g.onMove != nil {
		g.onMove(m)
	}
	return true
}

// Move is the identifier form of MoveDisc. It returns false if either
// identifier does not name a peg.
func (g *Game) Move(from, to PegID) bool {
	return g.MoveDisc(g.Peg(from), g.Peg(to))
}

// Solve runs the classic recursive solution, moving every disc from peg A
// to peg C in exactly 2^n - 1 moves. Each transfer goes through MoveDisc,
// so history, counting and observer notification behave exactly as in
// manual play. Solve returns immediately if a solve is already in
// progress on this instance.
func (g *Game) Solve() {
	if g.solving {
		return
	}
	g.solving = true
	g.solve(g.discCount, g.pegs[0], g.pegs[2], g.pegs[1])
	g.solving = false
}

// solve moves n discs from source to destination via auxiliary. The
// recursion order is the canonical one and must not change: it is what
// guarantees the minimal move sequence.
func (g *Game) solve(n int, source, destination, auxiliary *Peg) {
	if n == 1 {
		g.MoveDisc(source, destination)
		return
	}
	g.solve(n-1, source, auxiliary, destination)
	g.MoveDisc(source, destination)
	g.solve(n-1, auxiliary, destination, source)
}

// Peg returns the peg with the given identifier, or nil if the identifier
// is unknown.
func (g *Game) Peg(id PegID) *Peg {
	for _, p := range g.pegs {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// Pegs returns the three pegs in A, B, C order.
func (g *Game) Pegs() [3]*Peg {
	return g.pegs
}

// DiscCount returns the number of discs in play.
func (g *Game) DiscCount() int {
	return g.discCount
}

// MoveCount returns the number of successful moves since the last reset.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// History returns a snapshot copy of the move history in execution order.
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	copy(out, g.history)
	return out
}

// LastMove returns the most recent move, or nil if none has been made.
func (g *Game) LastMove() *Move {
	if len(g.history) == 0 {
		return nil
	}
	m := g.history[len(g.history)-1]
	return &m
}

// IsCompleted reports whether every disc sits on peg C.
func (g *Game) IsCompleted() bool {
	return g.pegs[2].Count() == g.discCount &&
		g.pegs[0].IsEmpty() && g.pegs[1].IsEmpty()
}

// IsSolving reports whether an auto-solution is currently running.
func (g *Game) IsSolving() bool {
	return g.solving
}

// Progress returns the fraction of discs already on peg C, in [0, 1].
func (g *Game) Progress() float64 {
	if g.discCount == 0 {
		return 1.0
	}
	return float64(g.pegs[2].Count()) / float64(g.discCount)
}

// MinimumMoves returns the provably minimal number of moves, 2^n - 1.
func (g *Game) MinimumMoves() int {
	return 1<<g.discCount - 1
}

// String returns a simple ASCII rendering of the three pegs, one level per
// line from the top down.
func (g *Game) String() string {
	var b strings.Builder
	b.WriteString("peg A\tpeg B\tpeg C\n")

	maxHeight := 0
	for _, p := range g.pegs {
		if p.Count() > maxHeight {
			maxHeight = p.Count()
		}
	}

	for level := maxHeight - 1; level >= 0; level-- {
		for _, p := range g.pegs {
			discs := p.Discs()
			if level < len(discs) {
				fmt.Fprintf(&b, "  %d\t", discs[level].Size())
			} else {
				b.WriteString("  |\t")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("=====\t=====\t=====\n")
	return b.String()
}

// Summary returns a multi-line report of the current game state.
func (g *Game) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "discs: %d\n", g.discCount)
	fmt.Fprintf(&b, "moves made: %d\n", g.moveCount)
	fmt.Fprintf(&b, "minimum moves: %d\n", g.MinimumMoves())
	fmt.Fprintf(&b, "progress: %.1f%%\n", g.Progress()*100)
	fmt.Fprintf(&b, "completed: %v\n", g.IsCompleted())
	for _, p := range g.pegs {
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	return b.String()
}
