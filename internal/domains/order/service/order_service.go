package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"stillform-backend/internal/domains/order/model"
	"stillform-backend/internal/domains/order/repository"
	workModel "stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/internal/shared/utils"
	"stillform-backend/pkg/logger"

	"github.com/shopspring/decimal"
)

type Options struct {
	// DecrementSupply reserves edition supply on purchase; off by default
	DecrementSupply bool
}

type OrderService struct {
	repo             repository.RepositoryInterface
	works            WorkStore
	physicalizations PhysicalizationFinder
	catalog          CacheInvalidator
	opts             Options
	now              func() time.Time
}

func NewService(
	repo repository.RepositoryInterface,
	works WorkStore,
	physicalizations PhysicalizationFinder,
	catalog CacheInvalidator,
	opts Options,
) ServiceInterface {
	return &OrderService{
		repo:             repo,
		works:            works,
		physicalizations: physicalizations,
		catalog:          catalog,
		opts:             opts,
		now:              time.Now,
	}
}

// =====================================================
// CREATE ORDER
// =====================================================

// CreateOrder records a completed purchase of an existing edition.
// Orders are not settled on-chain here; the order is final once stored.
func (s *OrderService) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFrom("VALIDATION_ERROR", "Validation Error", err)
	}

	work, err := s.works.GetByID(ctx, req.WorkID)
	if err != nil {
		return nil, workModel.ToAppError(err)
	}

	edition, ok := work.Edition(*req.EditionID)
	if !ok {
		return nil, workModel.ToAppError(workModel.ErrEditionNotFound)
	}

	quantity := *req.Quantity
	if s.opts.DecrementSupply {
		if err := s.reserveSupply(ctx, work, edition.EditionID, quantity); err != nil {
			return nil, err
		}
	}

	order := &model.Order{
		OrderID:      utils.NewID("ord"),
		WorkID:       work.ID,
		EditionID:    edition.EditionID,
		Quantity:     quantity,
		BuyerAddress: req.BuyerAddress,
		Price:        edition.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Currency:     edition.Currency,
		Status:       model.StatusCompleted,
		Timestamp:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, apperror.Internal("Failed to create order", err)
	}

	logger.Info("order created", map[string]interface{}{
		"order_id":   order.OrderID,
		"work_id":    order.WorkID,
		"edition_id": order.EditionID,
		"quantity":   order.Quantity,
		"price":      order.Price.String(),
		"buyer":      order.BuyerAddress,
	})

	return &model.CreateOrderResponse{OrderID: order.OrderID, Status: order.Status}, nil
}

// reserveSupply decrements the edition supply in place and persists the work
func (s *OrderService) reserveSupply(ctx context.Context, work *workModel.Work, editionID, quantity int) error {
	for i := range work.Editions {
		if work.Editions[i].EditionID != editionID {
			continue
		}
		if work.Editions[i].Supply < quantity {
			return model.ToAppError(model.ErrInsufficientSupply)
		}
		work.Editions[i].Supply -= quantity
		break
	}

	if err := s.works.Upsert(ctx, work); err != nil {
		return apperror.Internal("Failed to reserve supply", err)
	}
	if s.catalog != nil {
		s.catalog.InvalidateCache(ctx, work.Slug)
	}
	return nil
}

// =====================================================
// QUERIES
// =====================================================

func (s *OrderService) GetOrder(ctx context.Context, id string) (*model.DetailResponse, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, model.ToAppError(err)
	}

	physicalization, err := s.physicalizations.FindByOrderID(ctx, order.OrderID)
	if err != nil {
		return nil, apperror.Internal("Failed to load physicalization", err)
	}

	return &model.DetailResponse{
		Order:           s.view(ctx, *order),
		Physicalization: physicalization,
	}, nil
}

func (s *OrderService) ListForBuyer(ctx context.Context, wallet string) ([]model.View, error) {
	orders, err := s.repo.ListByBuyer(ctx, wallet)
	if err != nil {
		return nil, apperror.Internal("Failed to load orders", err)
	}
	return s.views(ctx, orders), nil
}

func (s *OrderService) ListForCreator(ctx context.Context, wallet string) ([]model.View, error) {
	works, err := s.works.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to load works", err)
	}

	owned := make(map[string]struct{})
	for _, w := range works {
		if strings.EqualFold(w.Creator.Address, wallet) {
			owned[w.ID] = struct{}{}
		}
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to load orders", err)
	}

	matched := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if _, ok := owned[o.WorkID]; ok {
			matched = append(matched, o)
		}
	}
	return s.views(ctx, matched), nil
}

func (s *OrderService) views(ctx context.Context, orders []model.Order) []model.View {
	out := make([]model.View, 0, len(orders))
	for _, o := range orders {
		out = append(out, s.view(ctx, o))
	}
	return out
}

// view embeds the work and edition; missing references are left out
func (s *OrderService) view(ctx context.Context, o model.Order) model.View {
	view := model.View{Order: o}

	work, err := s.works.GetByID(ctx, o.WorkID)
	if err != nil {
		if !errors.Is(err, workModel.ErrWorkNotFound) {
			logger.Error("failed to load work for order", err)
		}
		return view
	}

	view.Work = work
	if edition, ok := work.Edition(o.EditionID); ok {
		view.Edition = &edition
	}
	return view
}
