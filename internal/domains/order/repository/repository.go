package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stillform-backend/internal/domains/order/model"
	"stillform-backend/internal/infrastructure/docstore"
)

// RepositoryInterface - access to orders
type RepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// List returns every order in store order
	List(ctx context.Context) ([]model.Order, error)
	ListByBuyer(ctx context.Context, buyer string) ([]model.Order, error)
	Create(ctx context.Context, order *model.Order) error
}

type Repository struct {
	store docstore.Store[model.Order]
}

func NewRepository(store docstore.Store[model.Order]) RepositoryInterface {
	return &Repository{store: store}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	order, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return &order, nil
}

func (r *Repository) List(ctx context.Context) ([]model.Order, error) {
	orders, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *Repository) ListByBuyer(ctx context.Context, buyer string) ([]model.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if strings.EqualFold(o.BuyerAddress, buyer) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *Repository) Create(ctx context.Context, order *model.Order) error {
	if err := r.store.Upsert(ctx, *order); err != nil {
		return fmt.Errorf("create order %s: %w", order.OrderID, err)
	}
	return nil
}
