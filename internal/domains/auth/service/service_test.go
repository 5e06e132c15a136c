package service

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"stillform-backend/internal/domains/auth/model"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/pkg/jwt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, key *ecdsa.PrivateKey, message string) string {
	t.Helper()
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig)
}

func newSessionRequest(t *testing.T) (model.SessionRequest, *ecdsa.PrivateKey) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	address := crypto.PubkeyToAddress(key.PublicKey).Hex()
	message := fmt.Sprintf("Sign in to Stillform as %s", address)
	return model.SessionRequest{Address: address, Message: message, Signature: sign(t, key, message)}, key
}

func TestCreateSession(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	req, _ := newSessionRequest(t)

	session, err := NewService(manager).CreateSession(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(req.Address), session.Address)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	claims, err := manager.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Address, claims.Address())
}

func TestCreateSessionAcceptsLowercaseAddress(t *testing.T) {
	req, _ := newSessionRequest(t)
	req.Address = strings.ToLower(req.Address)

	_, err := NewService(jwt.NewManager("s", time.Hour)).CreateSession(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateSessionRejections(t *testing.T) {
	other, err := crypto.GenerateKey()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*model.SessionRequest)
		status int
		code   string
	}{
		{"missing fields", func(r *model.SessionRequest) { r.Signature = "" }, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad address", func(r *model.SessionRequest) { r.Address = "0x123" }, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"garbage signature", func(r *model.SessionRequest) { r.Signature = "0xdeadbeef" }, http.StatusBadRequest, "INVALID_SIGNATURE"},
		{"address not in message", func(r *model.SessionRequest) { r.Message = "hello" }, http.StatusUnauthorized, "ADDRESS_NOT_IN_MESSAGE"},
		{"signed by another key", func(r *model.SessionRequest) { r.Signature = sign(t, other, r.Message) }, http.StatusUnauthorized, "SIGNER_MISMATCH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := newSessionRequest(t)
			tt.mutate(&req)

			_, err := NewService(jwt.NewManager("s", time.Hour)).CreateSession(context.Background(), req)
			appErr, ok := apperror.As(err)
			require.True(t, ok, "%v", err)
			assert.Equal(t, tt.status, appErr.HTTPStatus())
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestRecoverSignerRecoveryIDs(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	want := crypto.PubkeyToAddress(key.PublicKey)

	raw, err := crypto.Sign(accounts.TextHash([]byte("hi")), key)
	require.NoError(t, err)

	got, err := RecoverSigner("hi", hexutil.Encode(raw))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = RecoverSigner("hi", strings.TrimPrefix(sign(t, key, "hi"), "0x"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
