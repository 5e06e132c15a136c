package repository

import (
	"context"
	"testing"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/infrastructure/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) RepositoryInterface {
	t.Helper()
	store := docstore.NewMemory[model.Work]()
	_, err := store.Seed(context.Background(), model.SeedWorks())
	require.NoError(t, err)
	return NewRepository(store)
}

func TestGetBySlug(t *testing.T) {
	repo := seeded(t)

	w, err := repo.GetBySlug(context.Background(), "forest-spirit")
	require.NoError(t, err)
	assert.Equal(t, "4", w.ID)

	_, err = repo.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrWorkNotFound)
}

func TestGetByIDMapsNotFound(t *testing.T) {
	_, err := seeded(t).GetByID(context.Background(), "99")
	assert.ErrorIs(t, err, model.ErrWorkNotFound)
}

func TestUpsertReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := seeded(t)

	w, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	w.Status = model.StatusUnlisted
	require.NoError(t, repo.Upsert(ctx, w))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "2", all[1].ID)
	assert.Equal(t, model.StatusUnlisted, all[1].Status)
}
