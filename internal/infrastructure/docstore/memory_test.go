package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string   `json:"id"`
	Body string   `json:"body"`
	Tags []string `json:"tags"`
}

func (n note) DocumentID() string { return n.ID }

func TestMemoryUpsertKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemory[note]()

	require.NoError(t, store.Upsert(ctx, note{ID: "b", Body: "first"}))
	require.NoError(t, store.Upsert(ctx, note{ID: "a", Body: "second"}))
	require.NoError(t, store.Upsert(ctx, note{ID: "b", Body: "updated"}))

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "updated", all[0].Body)
	assert.Equal(t, "a", all[1].ID)
}

func TestMemoryGetMissing(t *testing.T) {
	_, err := NewMemory[note]().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemory[note]()
	require.NoError(t, store.Upsert(ctx, note{ID: "a", Tags: []string{"x"}}))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	got.Tags[0] = "mutated"

	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, again.Tags)
}

func TestMemoryRejectsEmptyID(t *testing.T) {
	err := NewMemory[note]().Upsert(context.Background(), note{})
	assert.Error(t, err)
}

func TestMemorySeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemory[note]()

	n, err := store.Seed(ctx, []note{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = store.Seed(ctx, []note{{ID: "c"}})
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
