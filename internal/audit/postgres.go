package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ Store = (*PostgresSink)(nil)

// PostgresSink stores audit records in PostgreSQL
type PostgresSink struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and ensures the audit table exists
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresSink{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresSink) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS audit_log (
		id          UUID PRIMARY KEY,
		tenant_id   TEXT NOT NULL,
		actor_id    TEXT NOT NULL,
		action      TEXT NOT NULL,
		object_type TEXT NOT NULL,
		object_id   TEXT NOT NULL,
		payload     JSONB NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return fmt.Errorf("failed to create audit table: %w", err)
	}
	_, err = s.pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_audit_log_object ON audit_log (object_id)`)
	if err != nil {
		return fmt.Errorf("failed to create audit index: %w", err)
	}
	return nil
}

// Append inserts one record
func (s *PostgresSink) Append(ctx context.Context, rec Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO audit_log (id, tenant_id, actor_id, action, object_type, object_id, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.TenantID, rec.ActorID, rec.Action, rec.ObjectType, rec.ObjectID, []byte(rec.Payload), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	return nil
}

// ListByObject returns the records of an object, oldest first
func (s *PostgresSink) ListByObject(ctx context.Context, objectID string) ([]Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, tenant_id, actor_id, action, object_type, object_id, payload, created_at
		 FROM audit_log WHERE object_id = $1 ORDER BY created_at, id`,
		objectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var (
			rec     Record
			payload []byte
		)
		if err := rows.Scan(&rec.ID, &rec.TenantID, &rec.ActorID, &rec.Action, &rec.ObjectType, &rec.ObjectID, &payload, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		rec.Payload = payload
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the connection pool
func (s *PostgresSink) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
