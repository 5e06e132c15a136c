package model

import (
	"errors"

	"stillform-backend/internal/shared/apperror"
)

const DefaultPrefix = "uploads"

// File is an uploaded file read into memory
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Result struct {
	Success    bool   `json:"success"`
	Key        string `json:"key"`
	CID        string `json:"cid"`
	GatewayURL string `json:"gatewayUrl"`
	CoverKey   string `json:"coverKey,omitempty"`
	CoverURL   string `json:"coverUrl,omitempty"`
}

type InfoResponse struct {
	Message string `json:"message"`
}

var (
	ErrNoFile               = errors.New("no file provided")
	ErrStorageNotConfigured = errors.New("object storage is not configured")
	ErrFileTooLarge         = errors.New("file too large")
)

// ToAppError maps upload sentinels to API errors
func ToAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNoFile):
		return apperror.Validation("NO_FILE", "No file provided.", map[string]string{"file": "cannot be blank"})
	case errors.Is(err, ErrFileTooLarge):
		return apperror.Validation("FILE_TOO_LARGE", "File exceeds the 100MB limit.", map[string]string{"file": "too large"})
	case errors.Is(err, ErrStorageNotConfigured):
		return apperror.Upstream("STORAGE_UNAVAILABLE", "Upload failed.", err)
	}
	return err
}
