package model

import (
	"errors"
	"time"

	"stillform-backend/internal/shared/apperror"

	"github.com/ethereum/go-ethereum/common"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SessionRequest is a personal_sign proof of wallet ownership
type SessionRequest struct {
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

func (r SessionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Address, validation.Required, validation.By(isHexAddress)),
		validation.Field(&r.Message, validation.Required, validation.Length(1, 2048)),
		validation.Field(&r.Signature, validation.Required),
	)
}

func isHexAddress(value interface{}) error {
	s, _ := value.(string)
	if !common.IsHexAddress(s) {
		return errors.New("must be a 0x-prefixed 20 byte hex address")
	}
	return nil
}

type SessionResponse struct {
	Token     string    `json:"token"`
	Address   string    `json:"address"`
	ExpiresAt time.Time `json:"expiresAt"`
}

var (
	ErrMalformedSignature  = errors.New("malformed signature")
	ErrSignerMismatch      = errors.New("signature was not produced by address")
	ErrAddressNotInMessage = errors.New("signed message does not mention address")
)

// ToAppError maps session sentinels to API errors
func ToAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrMalformedSignature):
		return apperror.Validation("INVALID_SIGNATURE", "Malformed signature", map[string]string{"signature": "must be a 65 byte hex signature"})
	case errors.Is(err, ErrSignerMismatch):
		return apperror.Unauthorized("SIGNER_MISMATCH", "Signature does not match address")
	case errors.Is(err, ErrAddressNotInMessage):
		return apperror.Unauthorized("ADDRESS_NOT_IN_MESSAGE", "Signed message must contain the wallet address")
	}
	return err
}
