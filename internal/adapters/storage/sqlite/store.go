// Package sqlite persists wizard sessions in a SQLite database. The record,
// flags and issues are stored as JSON columns.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

//go:embed schema.sql
var schema string

var (
	_ ports.SessionRepository = (*Store)(nil)
	_ ports.HealthChecker     = (*Store)(nil)
)

// Store is a SessionRepository backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. busyTimeout bounds how long a writer waits on a locked database.
func Open(path string, busyTimeout time.Duration) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		filepath.Clean(path), busyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Create inserts a new session.
func (s *Store) Create(ctx context.Context, sess *wizard.Session) error {
	row, err := encode(sess)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, template_id, step_id, completed, flags, record, issues, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.id, row.templateID, row.stepID, row.completed, row.flags, row.record, row.issues, row.createdAt, row.updatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("session %s: %w", sess.ID, domain.ErrConflict)
		}
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// Get loads one session.
func (s *Store) Get(ctx context.Context, id string) (*wizard.Session, error) {
	var row sessionRow
	err := s.db.QueryRowContext(ctx,
		`SELECT id, template_id, step_id, completed, flags, record, issues, created_at, updated_at
		 FROM sessions WHERE id = ?`, id,
	).Scan(&row.id, &row.templateID, &row.stepID, &row.completed, &row.flags, &row.record, &row.issues, &row.createdAt, &row.updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return row.decode()
}

// Save overwrites every column of an existing session.
func (s *Store) Save(ctx context.Context, sess *wizard.Session) error {
	row, err := encode(sess)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions
		 SET template_id = ?, step_id = ?, completed = ?, flags = ?, record = ?, issues = ?, updated_at = ?
		 WHERE id = ?`,
		row.templateID, row.stepID, row.completed, row.flags, row.record, row.issues, row.updatedAt, row.id,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return expectOne(res, sess.ID)
}

// Delete removes one session.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return expectOne(res, id)
}

// DeleteExpired removes sessions last updated before cutoff.
func (s *Store) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at < ?`, toMillis(cutoff))
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return int(n), nil
}

type sessionRow struct {
	id         string
	templateID string
	stepID     int
	completed  bool
	flags      string
	record     string
	issues     string
	createdAt  int64
	updatedAt  int64
}

func encode(sess *wizard.Session) (sessionRow, error) {
	flags, err := json.Marshal(sess.Flags)
	if err != nil {
		return sessionRow{}, fmt.Errorf("encode flags: %w", err)
	}
	rec, err := json.Marshal(sess.Record)
	if err != nil {
		return sessionRow{}, fmt.Errorf("encode record: %w", err)
	}
	issues, err := json.Marshal(sess.Issues)
	if err != nil {
		return sessionRow{}, fmt.Errorf("encode issues: %w", err)
	}
	return sessionRow{
		id:         sess.ID,
		templateID: sess.TemplateID,
		stepID:     sess.StepID,
		completed:  sess.Completed,
		flags:      string(flags),
		record:     string(rec),
		issues:     string(issues),
		createdAt:  toMillis(sess.CreatedAt),
		updatedAt:  toMillis(sess.UpdatedAt),
	}, nil
}

func (r sessionRow) decode() (*wizard.Session, error) {
	sess := &wizard.Session{
		ID:         r.id,
		TemplateID: r.templateID,
		StepID:     r.stepID,
		Completed:  r.completed,
		CreatedAt:  fromMillis(r.createdAt),
		UpdatedAt:  fromMillis(r.updatedAt),
	}

	var flags wizard.Flags
	if err := json.Unmarshal([]byte(r.flags), &flags); err != nil {
		return nil, fmt.Errorf("decode flags of %s: %w", r.id, err)
	}
	var rec record.Record
	if err := json.Unmarshal([]byte(r.record), &rec); err != nil {
		return nil, fmt.Errorf("decode record of %s: %w", r.id, err)
	}
	var issues []validate.Issue
	if err := json.Unmarshal([]byte(r.issues), &issues); err != nil {
		return nil, fmt.Errorf("decode issues of %s: %w", r.id, err)
	}

	sess.Flags = flags
	sess.Record = rec
	sess.Issues = issues
	return sess, nil
}

func expectOne(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }
