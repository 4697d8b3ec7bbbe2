package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// MoveRecord is a committed move in the database.
type MoveRecord struct {
	MoveID     int64
	SessionID  string
	Seq        int
	TsMs       int64
	Notation   string
	Source     string
	Mismatched int
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// SourceReset marks a row where the cube was reset to solved. Its
// notation is ResetNotation and no move is applied.
const (
	SourceReset   = "reset"
	ResetNotation = "-"
)

// Create stores a move and returns its ID.
func (r *MoveRepository) Create(sessionID string, seq int, tsMs int64, move cube.Move, source string, mismatched int) (int64, error) {
	return r.insert(sessionID, seq, tsMs, move.Notation(), source, mismatched)
}

// CreateReset stores a reset marker and returns its ID.
func (r *MoveRepository) CreateReset(sessionID string, seq int, tsMs int64) (int64, error) {
	return r.insert(sessionID, seq, tsMs, ResetNotation, SourceReset, 0)
}

func (r *MoveRepository) insert(sessionID string, seq int, tsMs int64, notation, source string, mismatched int) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, seq, ts_ms, notation, source, mismatched)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, seq, tsMs, notation, source, mismatched)
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}
	return id, nil
}

// CreateBatch stores several moves of a session in a single transaction.
// The records' SessionID and MoveID fields are ignored.
func (r *MoveRepository) CreateBatch(sessionID string, records []MoveRecord) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for _, m := range records {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, seq, ts_ms, notation, source, mismatched)
				VALUES (?, ?, ?, ?, ?, ?)
			`, sessionID, m.Seq, m.TsMs, m.Notation, m.Source, m.Mismatched)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", m.Seq, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves of a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, seq, ts_ms, notation, source, mismatched
		FROM moves
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.Seq, &m.TsMs, &m.Notation, &m.Source, &m.Mismatched)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves in a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves parses stored notation back into moves. A reset marker drops
// everything before it, so the result applied to a solved cube gives the
// session's final state.
func ToMoves(records []MoveRecord) ([]cube.Move, error) {
	moves := make([]cube.Move, 0, len(records))
	for _, r := range records {
		if r.Source == SourceReset {
			moves = moves[:0]
			continue
		}
		m, err := cube.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d of session %s: %w", r.Seq, r.SessionID, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}
