package hanoi

import "testing"

func TestSolutionLength(t *testing.T) {
	for n := MinDiscs; n <= MaxDiscs; n++ {
		steps := Solution(n)
		want := 1<<n - 1
		if len(steps) != want {
			t.Errorf("Solution(%d) has %d steps, want %d", n, len(steps), want)
		}
	}
}

func TestSolutionInvalidCount(t *testing.T) {
	if steps := Solution(2); steps != nil {
		t.Errorf("Solution(2) should be nil, got %d steps", len(steps))
	}
	if steps := Solution(7); steps != nil {
		t.Errorf("Solution(7) should be nil, got %d steps", len(steps))
	}
}

func TestSolutionStepsAreLegal(t *testing.T) {
	for n := MinDiscs; n <= MaxDiscs; n++ {
		g, _ := New(n)
		for i, s := range Solution(n) {
			if !g.Move(s.From, s.To) {
				t.Fatalf("Solution(%d) step %d (%s>%s) is illegal", n, i+1, s.From, s.To)
			}
		}
		if !g.IsCompleted() {
			t.Errorf("Replaying Solution(%d) should complete the game", n)
		}
	}
}

func TestSolutionCanonicalOrder(t *testing.T) {
	// The 3-disc solution is fixed by the recursion order.
	want := []Step{
		{PegA, PegC}, {PegA, PegB}, {PegC, PegB},
		{PegA, PegC}, {PegB, PegA}, {PegB, PegC}, {PegA, PegC},
	}
	got := Solution(3)
	if len(got) != len(want) {
		t.Fatalf("Solution(3) has %d steps, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Step %d = %s>%s, want %s>%s", i+1, got[i].From, got[i].To, want[i].From, want[i].To)
		}
	}
}
