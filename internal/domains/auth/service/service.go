package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stillform-backend/internal/domains/auth/model"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/pkg/logger"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ServiceInterface - wallet sessions
type ServiceInterface interface {
	CreateSession(ctx context.Context, req model.SessionRequest) (*model.SessionResponse, error)
}

// TokenIssuer is satisfied by *jwt.Manager
type TokenIssuer interface {
	GenerateWalletToken(address string) (string, time.Time, error)
}

type Service struct {
	tokens TokenIssuer
}

func NewService(tokens TokenIssuer) ServiceInterface {
	return &Service{tokens: tokens}
}

func (s *Service) CreateSession(ctx context.Context, req model.SessionRequest) (*model.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.ValidationFrom("VALIDATION_ERROR", "Validation Error", err)
	}

	if !strings.Contains(strings.ToLower(req.Message), strings.ToLower(req.Address)) {
		return nil, model.ToAppError(model.ErrAddressNotInMessage)
	}

	signer, err := RecoverSigner(req.Message, req.Signature)
	if err != nil {
		return nil, model.ToAppError(err)
	}
	if signer != common.HexToAddress(req.Address) {
		logger.Warn("wallet signature mismatch", map[string]interface{}{
			"address": req.Address,
			"signer":  signer.Hex(),
		})
		return nil, model.ToAppError(model.ErrSignerMismatch)
	}

	token, expiresAt, err := s.tokens.GenerateWalletToken(signer.Hex())
	if err != nil {
		return nil, apperror.Internal("Failed to issue session token", err)
	}

	logger.Info("wallet session created", map[string]interface{}{"address": strings.ToLower(signer.Hex())})

	return &model.SessionResponse{
		Token:     token,
		Address:   strings.ToLower(signer.Hex()),
		ExpiresAt: expiresAt,
	}, nil
}

// RecoverSigner returns the address that produced an EIP-191 personal_sign
// signature over message. Both 0/1 and 27/28 recovery ids are accepted.
func RecoverSigner(message, signature string) (common.Address, error) {
	if !strings.HasPrefix(signature, "0x") && !strings.HasPrefix(signature, "0X") {
		signature = "0x" + signature
	}
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return common.Address{}, model.ErrMalformedSignature
	}

	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	if sig[crypto.RecoveryIDOffset] > 1 {
		return common.Address{}, model.ErrMalformedSignature
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", model.ErrMalformedSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
