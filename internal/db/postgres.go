package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/candidate-screener/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureTable creates a pool table if it does not exist
func (db *DB) EnsureTable(ctx context.Context, table string) error {
	if err := ValidateTableName(table); err != nil {
		return err
	}
	_, err := db.pool.Exec(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (
			seq BIGSERIAL PRIMARY KEY,
			id UUID NOT NULL UNIQUE,
			name VARCHAR(255) NOT NULL,
			rewards INT NOT NULL,
			academic_score DOUBLE PRECISION NOT NULL,
			skills TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, pgx.Identifier{table}.Sanitize()))
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// DropTable drops a pool table if it exists
func (db *DB) DropTable(ctx context.Context, table string) error {
	if err := ValidateTableName(table); err != nil {
		return err
	}
	if _, err := db.pool.Exec(ctx, "DROP TABLE IF EXISTS "+pgx.Identifier{table}.Sanitize()); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	return nil
}

// InsertRecord stores a record and returns it with its assigned ID
func (db *DB) InsertRecord(ctx context.Context, table string, record *types.Record) (*types.Record, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}
	stored, err := prepareRecord(record)
	if err != nil {
		return nil, err
	}

	err = db.pool.QueryRow(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, name, rewards, academic_score, skills)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`, pgx.Identifier{table}.Sanitize()),
		stored.ID, stored.Name, stored.RewardCount, stored.AcademicScore, stored.SkillsText(),
	).Scan(&stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}
	return stored, nil
}

// ListRecords retrieves every record of a pool in insertion order
func (db *DB) ListRecords(ctx context.Context, table string) ([]types.Record, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}
	rows, err := db.pool.Query(ctx, fmt.Sprintf(
		`SELECT id, name, rewards, academic_score, COALESCE(skills, ''), created_at
		 FROM %s ORDER BY seq ASC`, pgx.Identifier{table}.Sanitize()))
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return collectRecords(rows)
}

// ListRecentRecords retrieves the most recently inserted records, newest first
func (db *DB) ListRecentRecords(ctx context.Context, table string, limit int) ([]types.Record, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []types.Record{}, nil
	}
	rows, err := db.pool.Query(ctx, fmt.Sprintf(
		`SELECT id, name, rewards, academic_score, COALESCE(skills, ''), created_at
		 FROM %s ORDER BY seq DESC LIMIT $1`, pgx.Identifier{table}.Sanitize()),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent records: %w", err)
	}
	return collectRecords(rows)
}

// GetRecord retrieves a record by ID. Returns nil, nil when it does not exist.
func (db *DB) GetRecord(ctx context.Context, table string, id uuid.UUID) (*types.Record, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}
	var (
		r      types.Record
		skills string
	)
	err := db.pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT id, name, rewards, academic_score, COALESCE(skills, ''), created_at
		 FROM %s WHERE id = $1`, pgx.Identifier{table}.Sanitize()),
		id,
	).Scan(&r.ID, &r.Name, &r.RewardCount, &r.AcademicScore, &skills, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	r.Skills = types.ParseSkillList(skills)
	return &r, nil
}

func collectRecords(rows pgx.Rows) ([]types.Record, error) {
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		var (
			r         types.Record
			skills    string
			createdAt time.Time
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.RewardCount, &r.AcademicScore, &skills, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.Skills = types.ParseSkillList(skills)
		r.CreatedAt = createdAt
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}
