// Package hanoi implements the Towers of Hanoi puzzle state engine.
//
// # Features
//
//   - Validated peg/disc model with the size-ordering rule enforced on
//     every insertion
//   - Legal single moves between pegs, by reference or by identifier
//   - The classic recursive auto-solution (exactly 2^n - 1 moves)
//   - Append-only move history with sequence numbers
//   - Synchronous move observer for driving presentation layers
//
// # Quick Start
//
// Create a game, watch it solve itself:
//
//	game, err := hanoi.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	game.OnMove(func(m hanoi.Move) {
//	    fmt.Println(m)
//	})
//
//	game.Solve()
//	fmt.Println("moves:", game.MoveCount()) // 7
//
// # Manual Play
//
// Moves are validated and reported as booleans; an illegal move never
// changes peg state:
//
//	game, _ := hanoi.New(4)
//	game.Move(hanoi.PegA, hanoi.PegC) // true
//	game.Move(hanoi.PegA, hanoi.PegC) // false: disc 2 cannot rest on disc 1
//
// # Concurrency
//
// A Game has no internal locking. It is a single-writer structure: callers
// must serialize Move, MoveDisc, Reset and Solve externally. The observer
// callback runs synchronously in move order and must not mutate the game;
// pacing, animation and thread hand-off belong to the caller.
package hanoi
