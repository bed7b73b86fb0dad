package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/candidate-screener/internal/types"
	_ "modernc.org/sqlite"
)

// SQLiteDB is a file-backed store for local runs and tests
type SQLiteDB struct {
	pool *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at path
func OpenSQLite(ctx context.Context, path string) (*SQLiteDB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// sqlite wants a single writer
	pool.SetMaxOpenConns(1)
	pool.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.PingContext(pingCtx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return &SQLiteDB{pool: pool}, nil
}

// Close closes the database
func (d *SQLiteDB) Close() {
	if d == nil || d.pool == nil {
		return
	}
	_ = d.pool.Close()
}

func quoteIdent(table string) string {
	return `"` + table + `"`
}

// EnsureTable creates a pool table if it does not exist
func (d *SQLiteDB) EnsureTable(ctx context.Context, table string) error {
	if err := ValidateTableName(table); err != nil {
		return err
	}
	_, err := d.pool.ExecContext(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			rewards INTEGER NOT NULL,
			academic_score REAL NOT NULL,
			skills TEXT,
			created_at TEXT NOT NULL
		)`, quoteIdent(table)))
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// DropTable drops a pool table if it exists
func (d *SQLiteDB) DropTable(ctx context.Context, table string) error {
	if err := ValidateTableName(table); err != nil {
		return err
	}
	if _, err := d.pool.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(table)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	return nil
}

// InsertRecord stores a record and returns it with its assigned ID
func (d *SQLiteDB) InsertRecord(ctx context.Context, table string, record *types.Record) (*types.Record, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}
	stored, err := prepareRecord(record)
	if err != nil {
		return nil, err
	}
	stored.CreatedAt = time.Now().UTC()

	_, err = d.pool.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, name, rewards, academic_score, skills, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`, quoteIdent(table)),
		stored.ID.String(), stored.Name, stored.RewardCount, stored.AcademicScore,
		stored.SkillsText(), stored.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}
	return stored, nil
}

// ListRecords retrieves every record of a pool in insertion order
func (d *SQLiteDB) ListRecords(ctx context.Context, table string) ([]types.Record, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}
	rows, err := d.pool.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, name, rewards, academic_score, COALESCE(skills, ''), created_at
		 FROM %s ORDER BY seq ASC`, quoteIdent(table)))
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return scanSQLiteRecords(rows)
}

// ListRecentRecords retrieves the most recently inserted records, newest first
func (d *SQLiteDB) ListRecentRecords(ctx context.Context, table string, limit int) ([]types.Record, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []types.Record{}, nil
	}
	rows, err := d.pool.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, name, rewards, academic_score, COALESCE(skills, ''), created_at
		 FROM %s ORDER BY seq DESC LIMIT ?`, quoteIdent(table)), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent records: %w", err)
	}
	return scanSQLiteRecords(rows)
}

// GetRecord retrieves a record by ID. Returns nil, nil when it does not exist.
func (d *SQLiteDB) GetRecord(ctx context.Context, table string, id uuid.UUID) (*types.Record, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}
	row := d.pool.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT id, name, rewards, academic_score, COALESCE(skills, ''), created_at
		 FROM %s WHERE id = ?`, quoteIdent(table)), id.String())

	r, err := scanSQLiteRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteRecord(row rowScanner) (*types.Record, error) {
	var (
		r         types.Record
		id        string
		skills    string
		createdAt string
	)
	if err := row.Scan(&id, &r.Name, &r.RewardCount, &r.AcademicScore, &skills, &createdAt); err != nil {
		return nil, err
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid record id %q: %w", id, err)
	}
	r.ID = parsedID
	r.Skills = types.ParseSkillList(skills)
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		r.CreatedAt = ts
	}
	return &r, nil
}

func scanSQLiteRecords(rows *sql.Rows) ([]types.Record, error) {
	defer func() { _ = rows.Close() }()

	records := []types.Record{}
	for rows.Next() {
		r, err := scanSQLiteRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}
