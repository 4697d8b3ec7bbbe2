package storage

import (
	"time"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// SessionRecorder journals the moves of one running session.
type SessionRecorder struct {
	sessions *SessionRepository
	moves    *MoveRepository

	id    string
	start time.Time
	seq   int
	now   func() time.Time
}

// StartSession opens a new session and returns a recorder for it.
func StartSession(db *DB, frames int, frontEnd, appVersion string) (*SessionRecorder, error) {
	r := &SessionRecorder{
		sessions: NewSessionRepository(db),
		moves:    NewMoveRepository(db),
		now:      time.Now,
	}
	r.start = r.now()

	id, err := r.sessions.Create(r.start, frames, frontEnd, appVersion)
	if err != nil {
		return nil, err
	}
	r.id = id
	return r, nil
}

// ID returns the session ID.
func (r *SessionRecorder) ID() string {
	return r.id
}

// Record stores one committed move.
func (r *SessionRecorder) Record(m cube.Move, source string, mismatched int) error {
	tsMs := r.now().Sub(r.start).Milliseconds()
	if _, err := r.moves.Create(r.id, r.seq, tsMs, m, source, mismatched); err != nil {
		return err
	}
	r.seq++
	return nil
}

// Reset stores a marker for a cube reset to solved.
func (r *SessionRecorder) Reset() error {
	tsMs := r.now().Sub(r.start).Milliseconds()
	if _, err := r.moves.CreateReset(r.id, r.seq, tsMs); err != nil {
		return err
	}
	r.seq++
	return nil
}

// Close marks the session as ended.
func (r *SessionRecorder) Close() error {
	return r.sessions.End(r.id, r.now())
}
