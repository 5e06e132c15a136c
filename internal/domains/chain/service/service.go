package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"stillform-backend/internal/infrastructure/chain"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/pkg/cache"
	"stillform-backend/pkg/logger"
)

const collectionCacheTTL = 30 * time.Second

// ServiceInterface - read-only views of on-chain collections
type ServiceInterface interface {
	// GetCollection reads a collection; chainID may be empty for the configured chain
	GetCollection(ctx context.Context, address, chainID string) (*chain.CollectionInfo, error)
}

// CollectionReader is implemented by *chain.Reader
type CollectionReader interface {
	ChainID() int64
	ReadCollection(ctx context.Context, address string) (*chain.CollectionInfo, error)
}

type Service struct {
	reader CollectionReader
	cache  cache.Cache
}

func NewService(reader CollectionReader, c cache.Cache) ServiceInterface {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Service{reader: reader, cache: c}
}

func (s *Service) GetCollection(ctx context.Context, address, chainID string) (*chain.CollectionInfo, error) {
	if chainID = strings.TrimSpace(chainID); chainID != "" {
		id, err := strconv.ParseInt(chainID, 10, 64)
		if err != nil || id != s.reader.ChainID() {
			return nil, apperror.Validation("UNSUPPORTED_CHAIN", "Unsupported chain", map[string]string{
				"chainId": fmt.Sprintf("only chain %d is configured", s.reader.ChainID()),
			})
		}
	}

	key := fmt.Sprintf("chain:collection:%d:%s", s.reader.ChainID(), strings.ToLower(address))
	var cached chain.CollectionInfo
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	info, err := s.reader.ReadCollection(ctx, address)
	if err != nil {
		return nil, ToAppError(err)
	}

	if err := s.cache.Set(ctx, key, info, collectionCacheTTL); err != nil {
		logger.Warn("failed to cache collection", map[string]interface{}{"address": address, "error": err.Error()})
	}
	return info, nil
}

// ToAppError maps chain read failures; RPC problems surface as 502
func ToAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, chain.ErrInvalidAddress):
		return apperror.Validation("INVALID_ADDRESS", "Invalid contract address", map[string]string{"address": "must be a 0x-prefixed 20 byte hex address"})
	case errors.Is(err, chain.ErrNotConfigured):
		return apperror.Upstream("RPC_NOT_CONFIGURED", "Chain RPC is not configured", err).WithStatus(http.StatusBadGateway)
	}
	return apperror.Upstream("CHAIN_READ_FAILED", "Failed to read collection from chain", err).WithStatus(http.StatusBadGateway)
}
