package model

import (
	"errors"

	"stillform-backend/internal/shared/apperror"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInsufficientSupply = errors.New("insufficient edition supply")
)

// ToAppError maps order sentinels to API errors; anything else passes through
func ToAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrOrderNotFound):
		return &apperror.Error{Kind: apperror.KindNotFound, Code: "ORDER_NOT_FOUND", Message: "Order not found", Err: err}
	case errors.Is(err, ErrInsufficientSupply):
		return &apperror.Error{
			Kind:    apperror.KindValidation,
			Code:    "INSUFFICIENT_SUPPLY",
			Message: "Not enough supply left for this edition",
			Fields:  map[string]string{"quantity": "exceeds remaining supply"},
			Err:     err,
		}
	}
	return err
}
