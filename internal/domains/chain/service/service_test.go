package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"stillform-backend/internal/infrastructure/chain"
	"stillform-backend/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	info  *chain.CollectionInfo
	err   error
	reads int
}

func (s *stubReader) ChainID() int64 { return 11155111 }

func (s *stubReader) ReadCollection(context.Context, string) (*chain.CollectionInfo, error) {
	s.reads++
	return s.info, s.err
}

func TestGetCollection(t *testing.T) {
	reader := &stubReader{info: &chain.CollectionInfo{Name: "CJ"}}
	svc := NewService(reader, nil)

	info, err := svc.GetCollection(context.Background(), "0xabc", "")
	require.NoError(t, err)
	assert.Equal(t, "CJ", info.Name)

	_, err = svc.GetCollection(context.Background(), "0xabc", "11155111")
	require.NoError(t, err)
}

func TestGetCollectionRejectsOtherChain(t *testing.T) {
	reader := &stubReader{}
	_, err := NewService(reader, nil).GetCollection(context.Background(), "0xabc", "137")

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "UNSUPPORTED_CHAIN", appErr.Code)
	assert.Zero(t, reader.reads)
}

func TestGetCollectionErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{chain.ErrInvalidAddress, http.StatusBadRequest},
		{chain.ErrNotConfigured, http.StatusBadGateway},
		{errors.New("call name: connection refused"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		_, err := NewService(&stubReader{err: tt.err}, nil).GetCollection(context.Background(), "0xabc", "")
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, tt.status, appErr.HTTPStatus(), tt.err.Error())
	}
}
