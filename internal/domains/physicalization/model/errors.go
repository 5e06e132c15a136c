package model

import (
	"errors"

	"stillform-backend/internal/shared/apperror"
)

var (
	ErrWorkIDRequired          = errors.New("work id is required")
	ErrPhysicalizationNotFound = errors.New("physicalization request not found")
)

// ToAppError maps physicalization sentinels to API errors
func ToAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrWorkIDRequired):
		return &apperror.Error{
			Kind:    apperror.KindValidation,
			Code:    "WORK_ID_REQUIRED",
			Message: "Work ID is required",
			Fields:  map[string]string{"workId": "cannot be blank"},
			Err:     err,
		}
	case errors.Is(err, ErrPhysicalizationNotFound):
		return &apperror.Error{Kind: apperror.KindNotFound, Code: "PHYSICALIZATION_NOT_FOUND", Message: "Physicalization request not found", Err: err}
	}
	return err
}
