package model

import (
	"time"

	workModel "stillform-backend/internal/domains/work/model"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Order is a purchase of one or more units of a work edition
type Order struct {
	OrderID      string          `json:"orderId"`
	WorkID       string          `json:"workId"`
	EditionID    int             `json:"editionId"`
	Quantity     int             `json:"quantity"`
	BuyerAddress string          `json:"buyerAddress"`
	Price        decimal.Decimal `json:"price"` // edition price x quantity
	Currency     string          `json:"currency"`
	Status       Status          `json:"status"`
	Timestamp    time.Time       `json:"timestamp"`
}

func (o Order) DocumentID() string { return o.OrderID }

// View embeds the referenced work and edition
type View struct {
	Order
	Work    *workModel.Work    `json:"work,omitempty"`
	Edition *workModel.Edition `json:"edition,omitempty"`
}
