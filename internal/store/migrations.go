package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Sessions table - one row per tracker run with recording enabled
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			ended_at DATETIME
		)`,

		// Vectors table - one row per hand per processed frame
		`CREATE TABLE IF NOT EXISTS vectors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			frame INTEGER NOT NULL,
			hand TEXT NOT NULL CHECK(hand IN ('Left', 'Right')),
			v0 REAL NOT NULL,
			v1 REAL NOT NULL,
			v2 REAL NOT NULL,
			v3 REAL NOT NULL,
			v4 REAL NOT NULL,
			v5 REAL NOT NULL,
			v6 REAL NOT NULL,
			recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_vectors_session_id ON vectors(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_vectors_session_frame ON vectors(session_id, frame)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
