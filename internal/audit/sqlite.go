package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var _ Store = (*SQLiteSink)(nil)

// SQLiteSink stores audit records in a local SQLite database
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite audit database at path
func OpenSQLite(path string) (*SQLiteSink, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create audit directory %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initSQLiteSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init audit schema: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

func initSQLiteSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS audit_log (
		id          TEXT PRIMARY KEY,
		tenant_id   TEXT NOT NULL,
		actor_id    TEXT NOT NULL,
		action      TEXT NOT NULL,
		object_type TEXT NOT NULL,
		object_id   TEXT NOT NULL,
		payload     TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_audit_log_object ON audit_log (object_id)`)
	return err
}

// Append inserts one record
func (s *SQLiteSink) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_log (id, tenant_id, actor_id, action, object_type, object_id, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.TenantID, rec.ActorID, rec.Action, rec.ObjectType, rec.ObjectID,
		string(rec.Payload), rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	return nil
}

// ListByObject returns the records of an object in insertion order
func (s *SQLiteSink) ListByObject(ctx context.Context, objectID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tenant_id, actor_id, action, object_type, object_id, payload, created_at
		 FROM audit_log WHERE object_id = ? ORDER BY rowid`,
		objectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]Record, 0)
	for rows.Next() {
		var (
			rec       Record
			id        string
			payload   string
			createdAt string
		)
		if err := rows.Scan(&id, &rec.TenantID, &rec.ActorID, &rec.Action, &rec.ObjectType, &rec.ObjectID, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("failed to parse audit record id: %w", err)
		}
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse audit record time: %w", err)
		}
		rec.Payload = json.RawMessage(payload)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the database
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
