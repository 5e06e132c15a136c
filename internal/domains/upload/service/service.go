package service

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"stillform-backend/internal/domains/upload/model"
	"stillform-backend/internal/infrastructure/storage"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/pkg/logger"
)

// ServiceInterface - uploads to IPFS backed object storage
type ServiceInterface interface {
	Upload(ctx context.Context, prefix string, file model.File) (*model.Result, error)
	Delete(ctx context.Context, key string) error
}

// ObjectStore is implemented by *storage.S3Storage
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (*storage.StoredObject, error)
	Delete(ctx context.Context, key string) error
}

// CoverMaker is implemented by *storage.ImageProcessor
type CoverMaker interface {
	IsResizable(data []byte) bool
	Cover(data []byte) ([]byte, error)
}

type Service struct {
	store      ObjectStore
	images     CoverMaker
	gatewayURL string
	now        func() time.Time
}

// NewService builds the upload service. A nil store makes every upload fail
// with an upstream error.
func NewService(store ObjectStore, images CoverMaker, gatewayURL string) ServiceInterface {
	if gatewayURL != "" && !strings.HasSuffix(gatewayURL, "/") {
		gatewayURL += "/"
	}
	return &Service{
		store:      store,
		images:     images,
		gatewayURL: gatewayURL,
		now:        time.Now,
	}
}

// Upload stores the file under prefix/<unixMillis>-<name> and returns its CID.
// JPEG and PNG files also get a cover variant next to the original.
func (s *Service) Upload(ctx context.Context, prefix string, file model.File) (*model.Result, error) {
	if len(file.Data) == 0 {
		return nil, model.ToAppError(model.ErrNoFile)
	}
	if s.store == nil {
		return nil, model.ToAppError(model.ErrStorageNotConfigured)
	}

	key := s.objectKey(prefix, file.Name)
	obj, err := s.store.Put(ctx, key, file.Data, file.ContentType)
	if err != nil {
		return nil, apperror.Upstream("UPLOAD_FAILED", "Upload failed.", err)
	}

	result := &model.Result{
		Success:    true,
		Key:        obj.Key,
		CID:        obj.CID,
		GatewayURL: s.gatewayURL + obj.CID,
	}

	if s.images != nil && s.images.IsResizable(file.Data) {
		if cover, err := s.uploadCover(ctx, key, file.Data); err != nil {
			// the original is already stored; a missing cover is tolerated
			logger.Warn("cover variant skipped", map[string]interface{}{"key": key, "error": err.Error()})
		} else {
			result.CoverKey = cover.Key
			result.CoverURL = s.gatewayURL + cover.CID
		}
	}

	logger.Info("file uploaded", map[string]interface{}{
		"key":  result.Key,
		"cid":  result.CID,
		"size": len(file.Data),
	})
	return result, nil
}

func (s *Service) uploadCover(ctx context.Context, key string, data []byte) (*storage.StoredObject, error) {
	cover, err := s.images.Cover(data)
	if err != nil {
		return nil, err
	}
	return s.store.Put(ctx, key+".cover.jpg", cover, "image/jpeg")
}

func (s *Service) Delete(ctx context.Context, key string) error {
	if s.store == nil {
		return model.ToAppError(model.ErrStorageNotConfigured)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	logger.Info("object deleted", map[string]interface{}{"key": key})
	return nil
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func (s *Service) objectKey(prefix, name string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = model.DefaultPrefix
	}

	name = unsafeKeyChars.ReplaceAllString(path.Base(name), "_")
	if name == "" || name == "." || name == "_" {
		name = "file"
	}
	return path.Join(prefix, fmt.Sprintf("%d-%s", s.now().UnixMilli(), name))
}
