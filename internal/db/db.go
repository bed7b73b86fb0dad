// Package db provides relational storage for reference and candidate record pools.
package db

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/candidate-screener/internal/types"
)

// Default pool tables
const (
	TableEmployees  = "employees"
	TableCandidates = "candidates"
)

// Store is a record source. Every method names the pool table it reads or writes.
type Store interface {
	EnsureTable(ctx context.Context, table string) error
	DropTable(ctx context.Context, table string) error
	InsertRecord(ctx context.Context, table string, record *types.Record) (*types.Record, error)
	ListRecords(ctx context.Context, table string) ([]types.Record, error)
	ListRecentRecords(ctx context.Context, table string, limit int) ([]types.Record, error)
	GetRecord(ctx context.Context, table string, id uuid.UUID) (*types.Record, error)
	Close()
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// InvalidTableError is returned for table names that are not plain SQL identifiers
type InvalidTableError struct {
	Name string
}

func (e *InvalidTableError) Error() string {
	return fmt.Sprintf("invalid table name: %q", e.Name)
}

// ValidateTableName rejects anything other than a plain identifier before it reaches SQL
func ValidateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return &InvalidTableError{Name: name}
	}
	return nil
}

// Open connects to the store named by databaseURL.
// postgres:// and postgresql:// use PostgreSQL; sqlite://<path>, file:<path> or a bare
// path ending in .db use SQLite.
func Open(ctx context.Context, databaseURL string) (Store, error) {
	switch {
	case databaseURL == "":
		return nil, fmt.Errorf("database URL is empty")
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		pg, err := Connect(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		return pg, nil
	}

	path, ok := sqlitePath(databaseURL)
	if !ok {
		return nil, fmt.Errorf("unsupported database URL: %s", redactURL(databaseURL))
	}
	lite, err := OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	return lite, nil
}

func sqlitePath(databaseURL string) (string, bool) {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return strings.TrimPrefix(databaseURL, "sqlite://"), true
	case strings.HasPrefix(databaseURL, "file:"):
		return strings.TrimPrefix(databaseURL, "file:"), true
	case strings.HasSuffix(databaseURL, ".db"), strings.HasSuffix(databaseURL, ".sqlite"):
		return databaseURL, true
	default:
		return "", false
	}
}

// prepareRecord validates a record and assigns its identity before insert
func prepareRecord(record *types.Record) (*types.Record, error) {
	if record == nil {
		return nil, fmt.Errorf("record is nil")
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	stored := *record
	stored.ID = uuid.New()
	stored.Skills = append([]string{}, record.Skills...)
	return &stored, nil
}

// redactURL drops credentials from a URL for error messages
func redactURL(u string) string {
	at := strings.LastIndex(u, "@")
	scheme := strings.Index(u, "://")
	if at == -1 || scheme == -1 || at < scheme {
		return u
	}
	return u[:scheme+3] + "***" + u[at:]
}
