package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/unicordoba/hanoi/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage recorded sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions",
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

var sessionsLimit int

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	sessionsListCmd.Flags().IntVarP(&sessionsLimit, "limit", "l", 20, "Maximum sessions to list")
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No recorded sessions. Record one with: hanoi solve --record")
		return nil
	}

	fmt.Printf("%-36s  %-16s  %5s  %5s  %-9s\n", "SESSION", "STARTED", "DISCS", "MOVES", "RESULT")
	for _, s := range sessions {
		result := "abandoned"
		if s.Completed {
			result = "completed"
		} else if s.EndedAt == nil {
			result = "open"
		}
		fmt.Printf("%-36s  %-16s  %5d  %5d  %-9s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.DiscCount, s.MoveCount, result)
	}

	return nil
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := storage.NewSessionRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", args[0])
	}

	fmt.Printf("Session:  %s\n", session.SessionID)
	fmt.Printf("Started:  %s\n", session.StartedAt.Local().Format(time.RFC1123))
	if session.DurationMs != nil {
		fmt.Printf("Duration: %s\n", (time.Duration(*session.DurationMs) * time.Millisecond).Round(time.Millisecond))
	}
	fmt.Printf("Discs:    %d\n", session.DiscCount)
	fmt.Printf("Moves:    %d (minimum %d)\n", session.MoveCount, 1<<session.DiscCount-1)
	fmt.Printf("Result:   %v\n", session.Completed)
	if session.Notes != nil {
		fmt.Printf("Notes:    %s\n", *session.Notes)
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}

	if len(records) > 0 {
		fmt.Println()
		for _, r := range records {
			fmt.Printf("  %3d  %-4s  disc %d  +%dms\n", r.Seq, r.Notation, r.DiscSize, r.TsMs)
		}
	}

	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	session, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", args[0])
	}

	if err := repo.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted session %s\n", args[0])
	return nil
}
