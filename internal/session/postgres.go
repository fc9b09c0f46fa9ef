package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore persists workshop state in Postgres through the pgx stdlib
// driver. The schema is created lazily on first use.
type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS winery_contexts (
	session_id TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS poll_responses (
	id         TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	exercise   TEXT NOT NULL,
	response   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS beta_signups (
	id          TEXT PRIMARY KEY,
	email       TEXT NOT NULL,
	winery_name TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
);`)
	})
	return s.schemaErr
}

func (s *PostgresStore) SetContext(ctx context.Context, sessionID string, wc WineryContext) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	payload, err := json.Marshal(wc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO winery_contexts (session_id, payload, updated_at) VALUES ($1, $2, now())
ON CONFLICT (session_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		sessionID, payload)
	return err
}

func (s *PostgresStore) GetContext(ctx context.Context, sessionID string) (WineryContext, bool, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return WineryContext{}, false, err
	}
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM winery_contexts WHERE session_id = $1`, sessionID).Scan(&payload)
	if err == sql.ErrNoRows {
		return WineryContext{}, false, nil
	}
	if err != nil {
		return WineryContext{}, false, err
	}
	var wc WineryContext
	if err := json.Unmarshal(payload, &wc); err != nil {
		// Corrupt stored JSON reads as absent, never as a crash.
		return WineryContext{}, false, nil
	}
	return wc, true, nil
}

func (s *PostgresStore) AppendPoll(ctx context.Context, p PollResponse) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO poll_responses (id, session_id, exercise, response, created_at)
VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.SessionID, p.Exercise, p.Response, p.CreatedAt)
	return err
}

func (s *PostgresStore) ListPolls(ctx context.Context, exercise string) ([]PollResponse, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	query := `SELECT id, session_id, exercise, response, created_at FROM poll_responses`
	args := []any{}
	if exercise != "" {
		query += ` WHERE exercise = $1`
		args = append(args, exercise)
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PollResponse{}
	for rows.Next() {
		var p PollResponse
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Exercise, &p.Response, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) AppendBeta(ctx context.Context, b BetaSignup) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO beta_signups (id, email, winery_name, created_at) VALUES ($1, $2, $3, $4)`,
		b.ID, b.Email, b.WineryName, b.CreatedAt)
	return err
}

func (s *PostgresStore) Close() error { return s.db.Close() }
