package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/unicordoba/hanoi"
	"github.com/unicordoba/hanoi/internal/storage"
)

func openTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	s := NewSession(db)

	if s.State() != StateIdle {
		t.Errorf("New session state = %s, want idle", s.State())
	}
	if err := s.End(false); err == nil {
		t.Error("End before Start should fail")
	}

	id, err := s.Start(3, "", "test")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.SessionID() != id {
		t.Errorf("SessionID = %s, want %s", s.SessionID(), id)
	}
	if s.State() != StateRecording {
		t.Errorf("State after Start = %s, want recording", s.State())
	}
	if _, err := s.Start(3, "", "test"); err == nil {
		t.Error("Starting twice should fail")
	}

	game, err := hanoi.New(3)
	if err != nil {
		t.Fatal(err)
	}
	game.OnMove(func(m hanoi.Move) {
		if err := s.Record(m); err != nil {
			t.Errorf("Record: %v", err)
		}
	})
	game.Solve()

	if s.MoveCount() != 7 {
		t.Errorf("MoveCount = %d, want 7", s.MoveCount())
	}
	time.Sleep(5 * time.Millisecond)
	if s.ElapsedMs() <= 0 {
		t.Errorf("ElapsedMs while recording = %d, want > 0", s.ElapsedMs())
	}

	if err := s.End(game.IsCompleted()); err != nil {
		t.Fatalf("End: %v", err)
	}
	if s.State() != StateEnded {
		t.Errorf("State after End = %s, want ended", s.State())
	}
	if s.ElapsedMs() != 0 {
		t.Errorf("ElapsedMs after End = %d, want 0", s.ElapsedMs())
	}

	// The recorded session must be fully queryable afterwards.
	stored, err := storage.NewSessionRepository(db).Get(id)
	if err != nil {
		t.Fatalf("Get stored session: %v", err)
	}
	if stored == nil || stored.MoveCount != 7 || !stored.Completed {
		t.Errorf("Stored session = %+v, want 7 completed moves", stored)
	}
	records, err := storage.NewMoveRepository(db).GetBySession(id)
	if err != nil {
		t.Fatalf("Get stored moves: %v", err)
	}
	if len(records) != 7 {
		t.Errorf("Stored %d moves, want 7", len(records))
	}
}

func TestRecordIgnoredWhenIdle(t *testing.T) {
	db := openTestDB(t)
	s := NewSession(db)

	m := hanoi.Move{From: hanoi.PegA, To: hanoi.PegC, Disc: hanoi.NewDisc(1), Seq: 1, Time: time.Now()}
	if err := s.Record(m); err != nil {
		t.Errorf("Record while idle should be a no-op, got %v", err)
	}
	if s.MoveCount() != 0 {
		t.Errorf("MoveCount = %d, want 0", s.MoveCount())
	}
}

func TestSessionStateString(t *testing.T) {
	cases := []struct {
		state SessionState
		want  string
	}{
		{StateIdle, "idle"},
		{StateRecording, "recording"},
		{StateEnded, "ended"},
		{SessionState(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.state.String(); got != c.want {
			t.Errorf("SessionState(%d).String() = %q, want %q", c.state, got, c.want)
		}
	}
}
