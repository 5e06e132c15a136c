package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"stillform-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrMissingCID is returned when the provider did not report a CID for a stored object
var ErrMissingCID = errors.New("object stored without cid metadata")

// cidMetadataKey is the user metadata Filebase attaches to pinned objects
const cidMetadataKey = "cid"

// StoredObject describes an object after upload
type StoredObject struct {
	Key  string
	CID  string
	Size int64
}

// S3Storage uploads to an S3 compatible, IPFS backed bucket (Filebase)
type S3Storage struct {
	client *minio.Client
	bucket string
}

// NewS3Storage creates the client. The bucket must already exist.
func NewS3Storage(cfg config.StorageConfig) (*S3Storage, error) {
	host, secure, err := splitEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(host, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       secure,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	return &S3Storage{client: client, bucket: cfg.Bucket}, nil
}

// splitEndpoint turns "https://s3.filebase.com" into host + TLS flag
func splitEndpoint(endpoint string) (string, bool, error) {
	if !strings.Contains(endpoint, "://") {
		return endpoint, true, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("invalid storage endpoint %q: %w", endpoint, err)
	}
	return u.Host, u.Scheme != "http", nil
}

// Put uploads data and reads back the CID from the object metadata
func (s *S3Storage) Put(ctx context.Context, key string, data []byte, contentType string) (*StoredObject, error) {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	cid := metadataValue(info.UserMetadata, cidMetadataKey)
	if cid == "" {
		return nil, fmt.Errorf("%s: %w", key, ErrMissingCID)
	}

	return &StoredObject{Key: key, CID: cid, Size: info.Size}, nil
}

// Delete removes one object
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// Ping checks the bucket is reachable with the configured credentials
func (s *S3Storage) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

// metadataValue looks a key up case-insensitively; providers differ in casing
func metadataValue(meta map[string]string, key string) string {
	for k, v := range meta {
		if strings.EqualFold(k, key) || strings.EqualFold(k, "X-Amz-Meta-"+key) {
			return v
		}
	}
	return ""
}
