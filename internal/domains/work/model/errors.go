package model

import (
	"errors"

	"stillform-backend/internal/shared/apperror"
)

var (
	ErrWorkNotFound       = errors.New("work not found")
	ErrEditionNotFound    = errors.New("edition not found")
	ErrInvalidFilters     = errors.New("invalid filters format")
	ErrNoSupply           = errors.New("work has no edition with supply left")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidWorkPayload = errors.New("invalid work payload")
)

var workErrorMap = map[error]struct {
	Kind    apperror.Kind
	Code    string
	Message string
}{
	ErrWorkNotFound:      {apperror.KindNotFound, "WORK_NOT_FOUND", "Work not found"},
	ErrEditionNotFound:   {apperror.KindNotFound, "EDITION_NOT_FOUND", "Edition not found"},
	ErrInvalidFilters:    {apperror.KindValidation, "INVALID_FILTERS", "Invalid filters format"},
	ErrNoSupply:          {apperror.KindValidation, "NO_SUPPLY", "Work has no edition with supply left"},
	ErrInvalidTransition: {apperror.KindValidation, "INVALID_TRANSITION", "Work cannot change to the requested status"},
}

// ToAppError maps a domain sentinel to the API error it surfaces as.
// Errors that are already *apperror.Error or unknown pass through.
func ToAppError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	for sentinel, mapped := range workErrorMap {
		if errors.Is(err, sentinel) {
			return &apperror.Error{Kind: mapped.Kind, Code: mapped.Code, Message: mapped.Message, Err: err}
		}
	}
	return err
}
