package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/unicordoba/hanoi"
	"github.com/unicordoba/hanoi/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Replay a previously recorded session from the database, move by move.
Without a session ID the most recent session is replayed.

Usage:
  hanoi replay                       # Replay the latest session
  hanoi replay <session-id>          # Replay a specific session
  hanoi replay --speed 2.0           # Replay at 2x speed
  hanoi replay --step                # Step through moves manually`,
	RunE: runReplay,
}

var (
	replaySpeed float64
	replayStep  bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

func runReplay(cmd *cobra.Command, args []string) error {
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
	if len(records) == 0 {
		return fmt.Errorf("session %s has no moves", session.SessionID)
	}

	game, err := hanoi.New(session.DiscCount)
	if err != nil {
		return fmt.Errorf("stored session is invalid: %w", err)
	}

	model := newReplayModel(game, session, records, replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}

// replayModel steps a fresh game through the recorded moves.
type replayModel struct {
	game     *hanoi.Game
	session  *storage.Session
	records  []storage.MoveRecord
	index    int
	speed    float64
	stepMode bool
	paused   bool
	failed   string
	quitting bool
}

type replayMoveMsg struct{}

func newReplayModel(game *hanoi.Game, session *storage.Session, records []storage.MoveRecord, speed float64, stepMode bool) *replayModel {
	return &replayModel{
		game:     game,
		session:  session,
		records:  records,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
	}
}

func (m *replayModel) Init() tea.Cmd {
	if m.stepMode {
		return nil // Wait for user input in step mode
	}
	return m.scheduleNext()
}

// scheduleNext waits out the recorded gap to the next move, scaled by the
// playback speed.
func (m *replayModel) scheduleNext() tea.Cmd {
	if m.index >= len(m.records) {
		return nil
	}

	var gapMs int64
	if m.index > 0 {
		gapMs = m.records[m.index].TsMs - m.records[m.index-1].TsMs
	}
	if gapMs < 0 {
		gapMs = 0
	}
	delay := time.Duration(float64(gapMs)/m.speed) * time.Millisecond
	if delay < 50*time.Millisecond {
		delay = 50 * time.Millisecond
	}

	return tea.Tick(delay, func(time.Time) tea.Msg {
		return replayMoveMsg{}
	})
}

func (m *replayModel) applyNext() {
	if m.index >= len(m.records) || m.failed != "" {
		return
	}
	rec := m.records[m.index]
	m.index++
	if !m.game.Move(hanoi.PegID(rec.FromPeg), hanoi.PegID(rec.ToPeg)) {
		// A legal recording can never produce this; flag corrupt data.
		m.failed = fmt.Sprintf("stored move %d (%s>%s) is illegal", rec.Seq, rec.FromPeg, rec.ToPeg)
	}
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.applyNext()
			} else {
				m.paused = !m.paused
				if !m.paused {
					return m, m.scheduleNext()
				}
			}

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNext()
			}

		case "r":
			m.game.Reset()
			m.index = 0
			m.failed = ""
			if !m.stepMode && !m.paused {
				return m, m.scheduleNext()
			}

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayMoveMsg:
		if !m.paused {
			m.applyNext()
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Session Replay"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s  (%d discs, recorded %s)",
		m.session.SessionID, m.session.DiscCount,
		m.session.StartedAt.Local().Format("2006-01-02 15:04"))))
	b.WriteString("\n\n")

	b.WriteString(renderPegs(m.game, ""))
	b.WriteString("\n")

	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.records))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	if !m.stepMode {
		b.WriteString(fmt.Sprintf(" (%.2gx speed)", m.speed))
	}
	b.WriteString("\n")

	if last := m.game.LastMove(); last != nil {
		b.WriteString(fmt.Sprintf("Last: %s\n", last))
	}
	if m.game.IsCompleted() {
		b.WriteString(moveStyle.Render("Puzzle completed"))
		b.WriteString("\n")
	}
	if m.failed != "" {
		b.WriteString(errorStyle.Render(m.failed))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE=pause  p=pause  r=restart  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  r=restart  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
