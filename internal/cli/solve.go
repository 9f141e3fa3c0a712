package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/unicordoba/hanoi"
	"github.com/unicordoba/hanoi/internal/recorder"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the optimal auto-solution",
	Long: `Run the classic recursive solution, printing every move as it happens.
The solution always takes exactly 2^n - 1 moves for n discs.

Use --delay to pace the output, and --record to store the session in the
database for later replay or export.`,
	RunE: runSolve,
}

var (
	solveDiscs  int
	solveDelay  time.Duration
	solveRecord bool
	solveNotes  string
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVarP(&solveDiscs, "discs", "n", 3, "Number of discs (3-6)")
	solveCmd.Flags().DurationVarP(&solveDelay, "delay", "d", 0, "Pause between moves (e.g. 500ms)")
	solveCmd.Flags().BoolVarP(&solveRecord, "record", "r", false, "Record the session to the database")
	solveCmd.Flags().StringVar(&solveNotes, "notes", "", "Notes to attach to the recorded session")
}

func runSolve(cmd *cobra.Command, args []string) error {
	game, err := hanoi.New(solveDiscs)
	if err != nil {
		return err
	}

	var session *recorder.Session
	if solveRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		session = recorder.NewSession(db)
		sessionID, err := session.Start(solveDiscs, solveNotes, version)
		if err != nil {
			return err
		}
		fmt.Printf("Recording session %s\n", sessionID)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Solving %d discs (%d moves)", solveDiscs, game.MinimumMoves())))
	fmt.Println()

	// Pacing and persistence live here in the collaborator; the engine
	// itself runs the solve synchronously with no timing of its own.
	game.OnMove(func(m hanoi.Move) {
		fmt.Printf("%s  %s\n", moveStyle.Render(m.Notation()), m)
		if session != nil {
			if err := session.Record(m); err != nil && verbose {
				fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
			}
		}
		if solveDelay > 0 {
			time.Sleep(solveDelay)
		}
	})

	start := time.Now()
	game.Solve()
	elapsed := time.Since(start)

	fmt.Println()
	fmt.Println(game.String())
	fmt.Printf("Completed in %d moves (minimum %d) in %s\n",
		game.MoveCount(), game.MinimumMoves(), elapsed.Round(time.Millisecond))

	if session != nil {
		recordedMs := session.ElapsedMs()
		if err := session.End(game.IsCompleted()); err != nil {
			return err
		}
		fmt.Printf("Session saved: %s\n", session.SessionID())
		if verbose {
			fmt.Printf("Recorder: %d moves in %s, state %s\n",
				session.MoveCount(), time.Duration(recordedMs)*time.Millisecond, session.State())
		}
	}

	return nil
}
