// Package store keeps fetched API records in Postgres.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/SanteonNL/transparencydata/body"
)

const schema = `
CREATE TABLE IF NOT EXISTS transparency_records (
	resource   TEXT        NOT NULL,
	record_id  TEXT        NOT NULL,
	payload    JSONB       NOT NULL,
	fetched_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (resource, record_id)
)`

const insertRecord = `INSERT INTO transparency_records (resource, record_id, payload, fetched_at)
VALUES (:resource, :record_id, :payload, :fetched_at)
ON CONFLICT (resource, record_id) DO UPDATE SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at`

const selectRecords = `SELECT resource, record_id, payload, fetched_at
FROM transparency_records WHERE resource = $1 ORDER BY record_id`

type recordRow struct {
	Resource  string    `db:"resource"`
	RecordID  string    `db:"record_id"`
	Payload   []byte    `db:"payload"`
	FetchedAt time.Time `db:"fetched_at"`
}

type Store struct {
	db  *sqlx.DB
	log zerolog.Logger
}

// Open connects to Postgres and creates the records table when missing.
func Open(ctx context.Context, dsn string, log zerolog.Logger) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}
	s := New(db, log)
	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func New(db *sqlx.DB, log zerolog.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveRecords upserts records of a resource in one transaction and returns
// how many were written.
func (s *Store) SaveRecords(ctx context.Context, resource string, records []body.Record) (int, error) {
	rows, err := recordRows(resource, records, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, row := range rows {
		if _, err := tx.NamedExecContext(ctx, insertRecord, row); err != nil {
			return 0, fmt.Errorf("failed to save record %s/%s: %w", row.Resource, row.RecordID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit records: %w", err)
	}
	s.log.Debug().Str("resource", resource).Int("records", len(rows)).Msg("Saved records")
	return len(rows), nil
}

// LoadRecords returns the stored records of a resource ordered by record id.
func (s *Store) LoadRecords(ctx context.Context, resource string) ([]body.Record, error) {
	var rows []recordRow
	if err := s.db.SelectContext(ctx, &rows, selectRecords, resource); err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	records := make([]body.Record, 0, len(rows))
	for _, row := range rows {
		var r body.Record
		if err := json.Unmarshal(row.Payload, &r); err != nil {
			return nil, fmt.Errorf("record %s: %w", row.RecordID, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// recordRows maps records to table rows. Records without an id are keyed by
// the hash of their payload.
func recordRows(resource string, records []body.Record, fetchedAt time.Time) ([]recordRow, error) {
	rows := make([]recordRow, 0, len(records))
	for i, r := range records {
		payload, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		id := r.ID()
		if id == "" {
			sum := sha256.Sum256(payload)
			id = "sha256:" + hex.EncodeToString(sum[:])
		}
		rows = append(rows, recordRow{
			Resource:  resource,
			RecordID:  id,
			Payload:   payload,
			FetchedAt: fetchedAt,
		})
	}
	return rows, nil
}
