package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "screener.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.EnsureTable(context.Background(), TableEmployees))
	return db
}

func TestSQLite_InsertAndList(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	stored, err := db.InsertRecord(ctx, TableEmployees, &types.Record{
		Name:          "John Doe",
		RewardCount:   5,
		AcademicScore: 9.0,
		Skills:        []string{"Python", "Java", "Problem Solving"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	_, err = db.InsertRecord(ctx, TableEmployees, &types.Record{Name: "Jane Roe", RewardCount: 2, AcademicScore: 7.5})
	require.NoError(t, err)

	records, err := db.ListRecords(ctx, TableEmployees)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, stored.ID, records[0].ID)
	assert.Equal(t, "John Doe", records[0].Name)
	assert.Equal(t, 5, records[0].RewardCount)
	assert.InDelta(t, 9.0, records[0].AcademicScore, 1e-9)
	assert.Equal(t, []string{"Python", "Java", "Problem Solving"}, records[0].Skills)
	assert.Equal(t, "Jane Roe", records[1].Name)
	assert.Empty(t, records[1].Skills)
}

func TestSQLite_InsertDoesNotMutateInput(t *testing.T) {
	db := setupSQLite(t)

	input := &types.Record{Name: "Ada", Skills: []string{"go"}}
	stored, err := db.InsertRecord(context.Background(), TableEmployees, input)
	require.NoError(t, err)

	assert.Equal(t, uuid.Nil, input.ID)
	assert.NotEqual(t, uuid.Nil, stored.ID)
}

func TestSQLite_InsertInvalidRecord(t *testing.T) {
	db := setupSQLite(t)

	_, err := db.InsertRecord(context.Background(), TableEmployees, &types.Record{Name: "", RewardCount: -1})
	require.Error(t, err)
	var verr *types.ValidationError
	assert.ErrorAs(t, err, &verr)

	records, err := db.ListRecords(context.Background(), TableEmployees)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLite_SkillsRoundTrip(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	_, err := db.InsertRecord(ctx, TableEmployees, &types.Record{Name: "Ada", Skills: []string{"Leadership, mentoring"}})
	require.Error(t, err)
	var verr *types.ValidationError
	assert.ErrorAs(t, err, &verr)

	stored, err := db.InsertRecord(ctx, TableEmployees, &types.Record{Name: "Ada", Skills: []string{"Leadership", "C++ / Go"}})
	require.NoError(t, err)

	got, err := db.GetRecord(ctx, TableEmployees, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Skills, got.Skills)
}

func TestSQLite_ListRecent(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := db.InsertRecord(ctx, TableEmployees, &types.Record{Name: name})
		require.NoError(t, err)
	}

	recent, err := db.ListRecentRecords(ctx, TableEmployees, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Name)
	assert.Equal(t, "second", recent[1].Name)

	none, err := db.ListRecentRecords(ctx, TableEmployees, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLite_GetRecord(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	stored, err := db.InsertRecord(ctx, TableEmployees, &types.Record{Name: "Ada", RewardCount: 4, Skills: []string{"go"}})
	require.NoError(t, err)

	got, err := db.GetRecord(ctx, TableEmployees, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, []string{"go"}, got.Skills)

	missing, err := db.GetRecord(ctx, TableEmployees, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSQLite_DynamicTables(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, db.EnsureTable(ctx, "additional_data"))
	require.NoError(t, db.EnsureTable(ctx, "additional_data"))
	_, err := db.InsertRecord(ctx, "additional_data", &types.Record{Name: "x"})
	require.NoError(t, err)

	require.NoError(t, db.DropTable(ctx, "additional_data"))
	require.NoError(t, db.DropTable(ctx, "additional_data"))

	_, err = db.ListRecords(ctx, "additional_data")
	assert.Error(t, err)
}

func TestSQLite_RejectsInvalidTable(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	assert.Error(t, db.EnsureTable(ctx, "x; DROP TABLE employees"))
	_, err := db.ListRecords(ctx, "employees--")
	assert.Error(t, err)

	records, err := db.ListRecords(ctx, TableEmployees)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOpen_SQLiteURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "open.db")

	store, err := Open(context.Background(), "sqlite://"+path)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*SQLiteDB)
	assert.True(t, ok)
}
