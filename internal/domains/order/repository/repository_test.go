package repository

import (
	"context"
	"testing"

	"stillform-backend/internal/domains/order/model"
	"stillform-backend/internal/infrastructure/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) RepositoryInterface {
	t.Helper()
	store := docstore.NewMemory[model.Order]()
	_, err := store.Seed(context.Background(), model.SeedOrders())
	require.NoError(t, err)
	return NewRepository(store)
}

func TestGetByID(t *testing.T) {
	repo := seeded(t)

	o, err := repo.GetByID(context.Background(), "ord-002")
	require.NoError(t, err)
	assert.Equal(t, "3", o.WorkID)

	_, err = repo.GetByID(context.Background(), "ord-404")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestListByBuyerIgnoresCase(t *testing.T) {
	orders, err := seeded(t).ListByBuyer(context.Background(), "0xDEF...456")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ord-001", orders[0].OrderID)
}

func TestCreateAppends(t *testing.T) {
	ctx := context.Background()
	repo := seeded(t)

	require.NoError(t, repo.Create(ctx, &model.Order{OrderID: "ord_new", WorkID: "4", BuyerAddress: "0x1"}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "ord_new", all[3].OrderID)
}
