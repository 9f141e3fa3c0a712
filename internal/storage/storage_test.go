package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/unicordoba/hanoi"
)

// openTestDB opens a fresh database in a temporary directory.
func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, err := repo.Create(3, "warmup", "0.1.0")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned an empty session ID")
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s == nil {
		t.Fatal("Get returned nil for an existing session")
	}
	if s.DiscCount != 3 {
		t.Errorf("DiscCount = %d, want 3", s.DiscCount)
	}
	if s.Notes == nil || *s.Notes != "warmup" {
		t.Errorf("Notes = %v, want warmup", s.Notes)
	}
	if s.EndedAt != nil || s.Completed {
		t.Error("A fresh session should not be ended or completed")
	}

	last, err := repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast: %v", err)
	}
	if last == nil || last.SessionID != id {
		t.Errorf("GetLast should return the new session, got %v", last)
	}

	list, err := repo.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List should return 1 session, got %d", len(list))
	}

	if err := repo.End(id, 7, true); err != nil {
		t.Fatalf("End: %v", err)
	}
	s, err = repo.Get(id)
	if err != nil {
		t.Fatalf("Get after End: %v", err)
	}
	if s.MoveCount != 7 || !s.Completed {
		t.Errorf("Ended session should have 7 moves and completed=true, got %d/%v", s.MoveCount, s.Completed)
	}
	if s.EndedAt == nil {
		t.Error("Ended session should carry an end timestamp")
	}
	if s.DurationMs == nil || *s.DurationMs < 0 {
		t.Errorf("Ended session should carry a non-negative duration, got %v", s.DurationMs)
	}

	if err := repo.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	s, err = repo.Get(id)
	if err != nil {
		t.Fatalf("Get after Delete: %v", err)
	}
	if s != nil {
		t.Error("Deleted session should not be found")
	}
}

func TestGetMissingSession(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	s, err := repo.Get("no-such-session")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s != nil {
		t.Errorf("Get for an unknown ID should return nil, got %v", s)
	}

	last, err := repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast: %v", err)
	}
	if last != nil {
		t.Errorf("GetLast on an empty database should return nil, got %v", last)
	}
}

func TestMoveBatchRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessionID, err := NewSessionRepository(db).Create(3, "", "0.1.0")
	if err != nil {
		t.Fatalf("Create session: %v", err)
	}

	start := time.Now()
	game, err := hanoi.New(3)
	if err != nil {
		t.Fatal(err)
	}
	game.Solve()
	history := game.History()

	repo := NewMoveRepository(db)
	if err := repo.CreateBatch(sessionID, history, start); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	records, err := repo.GetBySession(sessionID)
	if err != nil {
		t.Fatalf("GetBySession: %v", err)
	}
	if len(records) != len(history) {
		t.Fatalf("GetBySession returned %d moves, want %d", len(records), len(history))
	}
	for i, r := range records {
		if r.MoveIndex != i {
			t.Errorf("Record %d has move index %d", i, r.MoveIndex)
		}
		if r.Seq != history[i].Seq {
			t.Errorf("Record %d has seq %d, want %d", i, r.Seq, history[i].Seq)
		}
		if r.Notation != history[i].Notation() {
			t.Errorf("Record %d notation %q, want %q", i, r.Notation, history[i].Notation())
		}
		if r.TsMs < 0 {
			t.Errorf("Record %d has negative timestamp %d", i, r.TsMs)
		}
		if i > 0 && r.TsMs < records[i-1].TsMs {
			t.Errorf("Record %d timestamp %d precedes record %d", i, r.TsMs, i-1)
		}
	}

	count, err := repo.Count(sessionID)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != len(history) {
		t.Errorf("Count = %d, want %d", count, len(history))
	}

	// The stored batch must convert back into the same legal move list,
	// which is what replay and export rebuild the game from.
	moves := ToMoves(records)
	replay, _ := hanoi.New(3)
	for i, m := range moves {
		if m.From != history[i].From || m.To != history[i].To || m.Disc.Size() != history[i].Disc.Size() {
			t.Errorf("Converted move %d = %s disc %d, want %s disc %d",
				i, m.Notation(), m.Disc.Size(), history[i].Notation(), history[i].Disc.Size())
		}
		if !replay.Move(m.From, m.To) {
			t.Fatalf("Stored move %d (%s) is not legal on replay", i, m.Notation())
		}
	}
	if !replay.IsCompleted() {
		t.Error("Replaying the stored batch should complete the puzzle")
	}
}

func TestMoveCreateSingle(t *testing.T) {
	db := openTestDB(t)
	sessionID, err := NewSessionRepository(db).Create(3, "", "")
	if err != nil {
		t.Fatalf("Create session: %v", err)
	}

	repo := NewMoveRepository(db)
	move := hanoi.Move{From: hanoi.PegA, To: hanoi.PegC, Disc: hanoi.NewDisc(1), Seq: 1, Time: time.Now()}
	id, err := repo.Create(sessionID, 0, 120, move)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 {
		t.Error("Create should return a row ID")
	}

	records, err := repo.GetBySession(sessionID)
	if err != nil {
		t.Fatalf("GetBySession: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("GetBySession returned %d moves, want 1", len(records))
	}
	r := records[0]
	if r.FromPeg != "A" || r.ToPeg != "C" || r.DiscSize != 1 || r.TsMs != 120 || r.Notation != "A>C" {
		t.Errorf("Unexpected stored move: %+v", r)
	}
}
