package service

import (
	"context"

	"stillform-backend/internal/domains/order/model"
	physicalizationModel "stillform-backend/internal/domains/physicalization/model"
	workModel "stillform-backend/internal/domains/work/model"
)

// ServiceInterface - order placement and order history
type ServiceInterface interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.CreateOrderResponse, error)
	GetOrder(ctx context.Context, id string) (*model.DetailResponse, error)
	ListForBuyer(ctx context.Context, wallet string) ([]model.View, error)
	// ListForCreator returns orders of every work created by the wallet
	ListForCreator(ctx context.Context, wallet string) ([]model.View, error)
}

// WorkStore is the slice of the work repository orders need
type WorkStore interface {
	GetByID(ctx context.Context, id string) (*workModel.Work, error)
	List(ctx context.Context) ([]workModel.Work, error)
	Upsert(ctx context.Context, work *workModel.Work) error
}

// PhysicalizationFinder looks up the request attached to an order
type PhysicalizationFinder interface {
	FindByOrderID(ctx context.Context, orderID string) (*physicalizationModel.Physicalization, error)
}

// CacheInvalidator drops cached catalog entries after a supply change
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context, slug string)
}
