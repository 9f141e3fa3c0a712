package hanoi

// Step is one from/to pair of the canonical solution.
type Step struct {
	From PegID
	To   PegID
}

// Solution returns the canonical minimal move sequence for n discs moving
// from peg A to peg C, as 2^n - 1 from/to pairs. It returns nil if n is
// outside [MinDiscs, MaxDiscs].
//
// The sequence is produced by running the solver against a scratch game,
// so every listed step is legal when applied in order from the initial
// configuration. Presentation layers use this to pace playback without
// touching a live game's solver.
func Solution(n int) []Step {
	g, err := New(n)
	if err != nil {
		return nil
	}

	steps := make([]Step, 0, g.MinimumMoves())
	g.OnMove(func(m Move) {
		steps = append(steps, Step{From: m.From, To: m.To})
	})
	g.Solve()
	return steps
}
