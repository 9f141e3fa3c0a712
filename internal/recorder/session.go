// Package recorder persists engine moves into a storage session as they
// happen. It sits between the engine's move observer and the database.
package recorder

import (
	"fmt"
	"sync"
	"time"

	"github.com/unicordoba/hanoi"
	"github.com/unicordoba/hanoi/internal/storage"
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session manages one recorded game session. Record is safe to call from
// the engine observer; the mutex serializes it against Start and End.
type Session struct {
	db *storage.DB

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository
}

// NewSession creates a new session manager.
func NewSession(db *storage.DB) *Session {
	return &Session{
		db:          db,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// ElapsedMs returns the elapsed time since session start in milliseconds.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateRecording {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}

// MoveCount returns the number of recorded moves.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// Start begins a new recording session for a game with discCount discs.
func (s *Session) Start(discCount int, notes, appVersion string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", fmt.Errorf("session already in progress")
	}

	sessionID, err := s.sessionRepo.Create(discCount, notes, appVersion)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionID = sessionID
	s.startTime = time.Now()
	s.moveIndex = 0
	s.state = StateRecording

	return sessionID, nil
}

// Record stores one engine move. Wire it to the engine directly:
//
//	game.OnMove(func(m hanoi.Move) { session.Record(m) })
func (s *Session) Record(m hanoi.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return nil // Not recording, ignore
	}

	tsMs := time.Since(s.startTime).Milliseconds()

	if _, err := s.moveRepo.Create(s.sessionID, s.moveIndex, tsMs, m); err != nil {
		return fmt.Errorf("failed to store move: %w", err)
	}
	s.moveIndex++

	return nil
}

// End finishes the session, storing the final move count and whether the
// puzzle was completed.
func (s *Session) End(completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return fmt.Errorf("no session in progress")
	}

	if err := s.sessionRepo.End(s.sessionID, s.moveIndex, completed); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded
	return nil
}
