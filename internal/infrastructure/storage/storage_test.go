package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/exactcover/internal/domain"
	"svw.info/exactcover/internal/ports"
)

func testPuzzle(id string, diff domain.Difficulty) *domain.Puzzle {
	b, _ := domain.ParseLine("530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	return &domain.Puzzle{
		ID:         id,
		Seed:       42,
		Difficulty: diff,
		Board:      *b,
		CreatedAt:  1700000000,
		Name:       "fixture",
	}
}

// both backends must satisfy the same contract
func runStorageContract(t *testing.T, store ports.Storage) {
	ctx := context.Background()

	require.Error(t, store.Save(ctx, &domain.Puzzle{}), "missing ID must be rejected")

	p := testPuzzle("p1", domain.Hard)
	require.NoError(t, store.Save(ctx, p))
	require.NoError(t, store.Save(ctx, testPuzzle("p2", domain.Easy)))

	got, err := store.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p.Board.Values, got.Board.Values)
	assert.Equal(t, p.Board.Fixed, got.Board.Fixed)
	assert.Equal(t, domain.Hard, got.Difficulty)
	assert.Equal(t, "fixture", got.Name)

	_, err = store.Load(ctx, "missing")
	require.ErrorIs(t, err, os.ErrNotExist)

	metas, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	ids := []string{metas[0].ID, metas[1].ID}
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids)
}

func TestFSStorage(t *testing.T) {
	store := NewFS(t.TempDir())
	runStorageContract(t, store)
	require.NoError(t, store.Close())
}

func TestSQLiteStorage(t *testing.T) {
	store, err := NewSQLite(filepath.Join(t.TempDir(), "puzzles.db"))
	require.NoError(t, err)
	defer store.Close()
	runStorageContract(t, store)
}

func TestSQLiteSaveOverwrites(t *testing.T) {
	store, err := NewSQLite(filepath.Join(t.TempDir(), "puzzles.db"))
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	p := testPuzzle("p1", domain.Medium)
	require.NoError(t, store.Save(ctx, p))
	p.Name = "renamed"
	require.NoError(t, store.Save(ctx, p))

	got, err := store.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)

	metas, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, metas, 1)
}
