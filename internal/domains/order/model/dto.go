package model

import (
	physicalizationModel "stillform-backend/internal/domains/physicalization/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateOrderRequest - POST /orders
type CreateOrderRequest struct {
	WorkID       string `json:"workId"`
	EditionID    *int   `json:"editionId"`
	Quantity     *int   `json:"quantity"`
	BuyerAddress string `json:"buyerAddress"`
}

func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WorkID, validation.Required),
		validation.Field(&r.EditionID, validation.NotNil),
		// Min ignores zero values, so Required rejects 0 as well as nil
		validation.Field(&r.Quantity,
			validation.Required.Error("must be a positive integer"),
			validation.Min(1).Error("must be a positive integer"),
		),
		validation.Field(&r.BuyerAddress, validation.Required, validation.Length(1, 128)),
	)
}

type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
	Status  Status `json:"status"`
}

// DetailResponse - GET /orders/:id
type DetailResponse struct {
	Order           View                                  `json:"order"`
	Physicalization *physicalizationModel.Physicalization `json:"physicalization,omitempty"`
}
