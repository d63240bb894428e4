package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Session represents one recorded tracker run.
type Session struct {
	ID        string
	StartedAt time.Time
	EndedAt   sql.NullTime
}

// VectorRow is one emitted hand vector as stored.
type VectorRow struct {
	ID         int64
	SessionID  string
	Frame      int64
	Hand       string
	Values     [7]float64
	RecordedAt time.Time
}

// SessionRepository provides operations on recorded sessions.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Begin inserts a new session starting now.
func (r *SessionRepository) Begin(id string) error {
	_, err := r.db.Exec(
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		id, time.Now(),
	)
	return err
}

// End stamps the session's end time.
func (r *SessionRepository) End(id string) error {
	_, err := r.db.Exec(
		`UPDATE sessions SET ended_at = ? WHERE id = ?`,
		time.Now(), id,
	)
	return err
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	sess := &Session{}

	err := r.db.QueryRow(
		`SELECT id, started_at, ended_at FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.StartedAt, &sess.EndedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return sess, nil
}

// VectorRepository provides operations on recorded vectors.
type VectorRepository struct {
	db *sql.DB
}

// Vectors returns the vector repository for this store.
func (s *Store) Vectors() *VectorRepository {
	return &VectorRepository{db: s.db}
}

// Append stores one emitted hand vector for a session.
func (r *VectorRepository) Append(sessionID string, frame int64, hand string, values [7]float64) error {
	_, err := r.db.Exec(
		`INSERT INTO vectors (session_id, frame, hand, v0, v1, v2, v3, v4, v5, v6)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, frame, hand,
		values[0], values[1], values[2], values[3], values[4], values[5], values[6],
	)
	return err
}

// BySession retrieves all vectors recorded for a session in frame order.
func (r *VectorRepository) BySession(sessionID string) ([]VectorRow, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, frame, hand, v0, v1, v2, v3, v4, v5, v6, recorded_at
		 FROM vectors
		 WHERE session_id = ?
		 ORDER BY frame, id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vectors []VectorRow
	for rows.Next() {
		var v VectorRow
		if err := rows.Scan(&v.ID, &v.SessionID, &v.Frame, &v.Hand,
			&v.Values[0], &v.Values[1], &v.Values[2], &v.Values[3],
			&v.Values[4], &v.Values[5], &v.Values[6], &v.RecordedAt); err != nil {
			return nil, err
		}
		vectors = append(vectors, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vectors, nil
}
