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

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle interactively",
	Long: `Interactive TUI for playing Towers of Hanoi.

Keyboard shortcuts:
  a/b/c   - Select source peg, then destination peg
  1/2/3   - Same as a/b/c
  Esc     - Clear the current selection
  s       - Watch the optimal solution from the start
  Space   - Pause/resume the solution playback
  +/-     - Playback speed
  r       - Reset the puzzle
  q       - Quit`,
	RunE: runPlay,
}

var (
	playDiscs  int
	playRecord bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playDiscs, "discs", "n", 3, "Number of discs (3-6)")
	playCmd.Flags().BoolVarP(&playRecord, "record", "r", false, "Record the session to the database")
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, err := hanoi.New(playDiscs)
	if err != nil {
		return err
	}

	model := newPlayModel(game)
	p := tea.NewProgram(model, tea.WithAltScreen())
	start := time.Now()
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	// Interactive play is persisted in one batch after the TUI exits, so
	// no database writes happen inside the input loop.
	if playRecord && game.MoveCount() > 0 {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		sessionRepo := storage.NewSessionRepository(db)
		sessionID, err := sessionRepo.Create(playDiscs, "", version)
		if err != nil {
			return err
		}
		if err := storage.NewMoveRepository(db).CreateBatch(sessionID, game.History(), start); err != nil {
			return err
		}
		if err := sessionRepo.End(sessionID, game.MoveCount(), game.IsCompleted()); err != nil {
			return err
		}
		fmt.Printf("Session saved: %s\n", sessionID)
	}

	return nil
}

// playModel drives manual play plus paced playback of the canonical
// solution. Playback never calls the engine solver directly: it replays
// Solution(n) one step at a time through Move, so pacing stays out of the
// engine (which would otherwise run all moves in one synchronous burst).
type playModel struct {
	game     *hanoi.Game
	selected hanoi.PegID // Pending source peg, "" when nothing selected
	status   string

	auto      []hanoi.Step
	autoIndex int
	playing   bool
	paused    bool
	interval  time.Duration

	quitting bool
}

type autoStepMsg struct{}

func newPlayModel(game *hanoi.Game) *playModel {
	return &playModel{
		game:     game,
		interval: 500 * time.Millisecond,
		status:   "Select a source peg to begin",
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) scheduleStep() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return autoStepMsg{}
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			m.selected = ""
			m.status = "Selection cleared"

		case "a", "1":
			return m.selectPeg(hanoi.PegA)
		case "b", "2":
			return m.selectPeg(hanoi.PegB)
		case "c", "3":
			return m.selectPeg(hanoi.PegC)

		case "r":
			m.game.Reset()
			m.stopAuto()
			m.selected = ""
			m.status = "Puzzle reset"

		case "s":
			if m.playing {
				break
			}
			m.game.Reset()
			m.auto = hanoi.Solution(m.game.DiscCount())
			m.autoIndex = 0
			m.playing = true
			m.paused = false
			m.selected = ""
			m.status = "Watching the optimal solution"
			return m, m.scheduleStep()

		case " ":
			if m.playing {
				m.paused = !m.paused
				if !m.paused {
					return m, m.scheduleStep()
				}
			}

		case "+", "=":
			m.interval /= 2
			if m.interval < 50*time.Millisecond {
				m.interval = 50 * time.Millisecond
			}

		case "-":
			m.interval *= 2
			if m.interval > 4*time.Second {
				m.interval = 4 * time.Second
			}
		}

	case autoStepMsg:
		if !m.playing || m.paused {
			break
		}
		if m.autoIndex >= len(m.auto) {
			m.stopAuto()
			m.status = "Solution complete"
			break
		}
		step := m.auto[m.autoIndex]
		m.autoIndex++
		m.game.Move(step.From, step.To)
		if m.autoIndex >= len(m.auto) {
			m.stopAuto()
			m.status = "Solution complete"
			break
		}
		return m, m.scheduleStep()
	}

	return m, nil
}

func (m *playModel) selectPeg(id hanoi.PegID) (tea.Model, tea.Cmd) {
	if m.playing {
		return m, nil
	}

	if m.selected == "" {
		if m.game.Peg(id).IsEmpty() {
			m.status = fmt.Sprintf("Peg %s is empty", id)
			return m, nil
		}
		m.selected = id
		m.status = fmt.Sprintf("Moving from %s - pick a destination", id)
		return m, nil
	}

	from := m.selected
	m.selected = ""
	if from == id {
		m.status = "Selection cleared"
		return m, nil
	}

	if m.game.Move(from, id) {
		m.status = m.game.LastMove().String()
		if m.game.IsCompleted() {
			m.status = fmt.Sprintf("Solved in %d moves (minimum %d)",
				m.game.MoveCount(), m.game.MinimumMoves())
		}
	} else {
		m.status = errorStyle.Render(fmt.Sprintf("Illegal move %s>%s", from, id))
	}
	return m, nil
}

func (m *playModel) stopAuto() {
	m.playing = false
	m.paused = false
	m.auto = nil
	m.autoIndex = 0
}

func (m *playModel) View() string {
	if m.quitting {
		return "Thanks for playing.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Towers of Hanoi"))
	b.WriteString("\n\n")

	b.WriteString(renderPegs(m.game, m.selected))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Moves: %d   Minimum: %d   Progress: %s\n",
		m.game.MoveCount(), m.game.MinimumMoves(), formatProgress(m.game.Progress())))

	if m.playing {
		state := fmt.Sprintf("Playback %d/%d", m.autoIndex, len(m.auto))
		if m.paused {
			state += " [PAUSED]"
		}
		b.WriteString(statusStyle.Render(state))
		b.WriteString(fmt.Sprintf(" (%s per move)\n", m.interval))
	}

	if hist := renderHistoryTail(m.game.History(), 16); hist != "" {
		b.WriteString("History: ")
		b.WriteString(hist)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("a/b/c=peg  s=solve  SPACE=pause  +/-=speed  r=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}
