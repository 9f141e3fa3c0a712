package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/unicordoba/hanoi/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export a session's move history to a file",
	Long: `Export a recorded session to a file. Without a session ID the most
recent session is exported.

Formats:
  text   - human-readable report with a summary header and numbered moves
  jsonl  - one JSON event per line, suitable for further processing`,
	RunE: runExport,
}

var (
	exportFormat string
	exportDir    string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "text", "Output format: text or jsonl")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "hanoi_history", "Output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)

	var session *storage.Session
	if len(args) == 0 {
		session, err = sessionRepo.GetLast()
	} else {
		session, err = sessionRepo.Get(args[0])
	}
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("no recorded session found; record one with: hanoi solve --record")
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := session.StartedAt.Local().Format("20060102_150405")
	base := fmt.Sprintf("hanoi_%ddiscs_%s", session.DiscCount, timestamp)

	var path string
	switch exportFormat {
	case "text":
		path = filepath.Join(exportDir, base+".txt")
		err = exportText(path, session, records)
	case "jsonl":
		path = filepath.Join(exportDir, base+".jsonl")
		err = exportJSONL(path, session, records)
	default:
		return fmt.Errorf("unknown format %q (want text or jsonl)", exportFormat)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d moves to %s\n", len(records), path)
	return nil
}

// exportText writes the report format: a summary header followed by the
// numbered move list.
func exportText(path string, session *storage.Session, records []storage.MoveRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	minimum := 1<<session.DiscCount - 1
	efficiency := "NOT OPTIMAL"
	if session.MoveCount == minimum {
		efficiency = "OPTIMAL"
	}

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "=== TOWERS OF HANOI - SESSION HISTORY ===")
	fmt.Fprintf(w, "Date: %s\n", session.StartedAt.Local().Format("02/01/2006 15:04:05"))
	fmt.Fprintf(w, "Discs: %d\n", session.DiscCount)
	fmt.Fprintf(w, "Total moves: %d\n", session.MoveCount)
	fmt.Fprintf(w, "Minimum moves: %d\n", minimum)
	fmt.Fprintf(w, "Efficiency: %s\n", efficiency)
	fmt.Fprintf(w, "Completed: %v\n", session.Completed)
	fmt.Fprintln(w, "=========================================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "MOVES:")
	fmt.Fprintln(w, "------")
	for _, r := range records {
		fmt.Fprintf(w, "move %d: disc %d from %s to %s\n", r.Seq, r.DiscSize, r.FromPeg, r.ToPeg)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// moveEvent is one exported JSONL line.
type moveEvent struct {
	Type     string `json:"type"`
	Seq      int    `json:"seq"`
	From     string `json:"from"`
	To       string `json:"to"`
	DiscSize int    `json:"disc_size"`
	TsMs     int64  `json:"ts_ms"`
	Notation string `json:"notation"`
}

// exportHeader is the first JSONL line.
type exportHeader struct {
	Type      string    `json:"type"`
	Version   string    `json:"version"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	DiscCount int       `json:"disc_count"`
	MoveCount int       `json:"move_count"`
	Completed bool      `json:"completed"`
}

func exportJSONL(path string, session *storage.Session, records []storage.MoveRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	enc := json.NewEncoder(w)

	header := exportHeader{
		Type:      "header",
		Version:   "1.0",
		SessionID: session.SessionID,
		CreatedAt: session.StartedAt,
		DiscCount: session.DiscCount,
		MoveCount: session.MoveCount,
		Completed: session.Completed,
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		ev := moveEvent{
			Type:     "move",
			Seq:      r.Seq,
			From:     r.FromPeg,
			To:       r.ToPeg,
			DiscSize: r.DiscSize,
			TsMs:     r.TsMs,
			Notation: r.Notation,
		}
		if err := enc.Encode(ev); err != nil {
			return fmt.Errorf("failed to write move %d: %w", r.Seq, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
