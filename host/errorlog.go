package host

import (
	"database/sql"
	"time"

	"github.com/manifoldhq/manifold/errors"
)

// ErrorLog persists failure records to SQLite so a management layer can
// inspect diagnostic history across host restarts. The in-memory
// BoundedErrorQueue remains the authoritative bounded view; this log is a
// best-effort durable sink behind it.
type ErrorLog struct {
	db *sql.DB
}

const errorLogSchema = `
CREATE TABLE IF NOT EXISTS query_errors (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	kind       TEXT NOT NULL,
	trace      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_query_errors_created_at ON query_errors(created_at);
`

// NewErrorLog creates an error log on the caller-owned database handle,
// applying the schema if needed.
func NewErrorLog(db *sql.DB) (*ErrorLog, error) {
	if _, err := db.Exec(errorLogSchema); err != nil {
		return nil, errors.Wrap(err, "failed to apply error log schema")
	}
	return &ErrorLog{db: db}, nil
}

// Append inserts one failure record
func (l *ErrorLog) Append(qerr QueryError) error {
	query := `
		INSERT INTO query_errors (id, created_at, kind, trace)
		VALUES (?, ?, ?, ?)
	`

	_, err := l.db.Exec(query, qerr.ID, qerr.Timestamp, string(qerr.Kind), qerr.Trace)
	if err != nil {
		return errors.Wrap(err, "failed to append query error")
	}

	return nil
}

// List returns the most recent records, newest first
func (l *ErrorLog) List(limit int) ([]QueryError, error) {
	query := `
		SELECT id, created_at, kind, trace
		FROM query_errors
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := l.db.Query(query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list query errors")
	}
	defer rows.Close()

	var records []QueryError
	for rows.Next() {
		var rec QueryError
		var kind string
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &kind, &rec.Trace); err != nil {
			return nil, errors.Wrap(err, "failed to scan query error")
		}
		rec.Kind = Kind(kind)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating query errors")
	}

	return records, nil
}

// ListByKind returns the most recent records of one classified kind
func (l *ErrorLog) ListByKind(kind Kind, limit int) ([]QueryError, error) {
	query := `
		SELECT id, created_at, kind, trace
		FROM query_errors
		WHERE kind = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := l.db.Query(query, string(kind), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list query errors by kind")
	}
	defer rows.Close()

	var records []QueryError
	for rows.Next() {
		var rec QueryError
		var k string
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &k, &rec.Trace); err != nil {
			return nil, errors.Wrap(err, "failed to scan query error")
		}
		rec.Kind = Kind(k)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating query errors")
	}

	return records, nil
}

// Prune removes records older than the given retention window and returns
// how many were deleted
func (l *ErrorLog) Prune(olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	result, err := l.db.Exec(`DELETE FROM query_errors WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune query errors")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get rows affected")
	}

	return int(rows), nil
}
