package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/unicordoba/hanoi"
)

// MoveRecord represents a stored move.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Seq       int
	FromPeg   string
	ToPeg     string
	DiscSize  int
	TsMs      int64
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create stores a single move and returns its row ID. tsMs is the move
// timestamp relative to session start.
func (r *MoveRepository) Create(sessionID string, moveIndex int, tsMs int64, move hanoi.Move) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, seq, from_peg, to_peg, disc_size, ts_ms, notation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, move.Seq, string(move.From), string(move.To), move.Disc.Size(), tsMs, move.Notation())

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch stores a full move history in a single transaction. Move
// timestamps are taken relative to start.
func (r *MoveRepository) CreateBatch(sessionID string, moves []hanoi.Move, start time.Time) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			tsMs := move.Time.Sub(start).Milliseconds()
			if tsMs < 0 {
				tsMs = 0
			}
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, seq, from_peg, to_peg, disc_size, ts_ms, notation)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, sessionID, i, move.Seq, string(move.From), string(move.To), move.Disc.Size(), tsMs, move.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, seq, from_peg, to_peg, disc_size, ts_ms, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Seq, &m.FromPeg, &m.ToPeg, &m.DiscSize, &m.TsMs, &m.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves converts MoveRecords back to engine moves.
func ToMoves(records []MoveRecord) []hanoi.Move {
	moves := make([]hanoi.Move, len(records))
	for i, r := range records {
		moves[i] = hanoi.Move{
			From: hanoi.PegID(r.FromPeg),
			To:   hanoi.PegID(r.ToPeg),
			Disc: hanoi.NewDisc(r.DiscSize),
			Seq:  r.Seq,
			Time: time.UnixMilli(r.TsMs),
		}
	}
	return moves
}
