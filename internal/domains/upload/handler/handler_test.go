package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"stillform-backend/internal/domains/upload/model"
	"stillform-backend/internal/domains/upload/service"
	"stillform-backend/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	prefix string
	file   model.File
}

func (s *stubService) Upload(_ context.Context, prefix string, file model.File) (*model.Result, error) {
	s.prefix = prefix
	s.file = file
	return &model.Result{Success: true, Key: "k", CID: "bafy", GatewayURL: "https://gw/bafy"}, nil
}

func (s *stubService) Delete(context.Context, string) error { return nil }

func setupRouter() (*gin.Engine, *stubService) {
	gin.SetMode(gin.TestMode)
	svc := &stubService{}
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, svc
}

func TestUploadInfo(t *testing.T) {
	r, _ := setupRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/upload", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please use POST")
}

func TestUploadMultipart(t *testing.T) {
	r, svc := setupRouter()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "dawn.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("pixels"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("prefix", "works"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "bafy", res["cid"])

	assert.Equal(t, "works", svc.prefix)
	assert.Equal(t, "dawn.png", svc.file.Name)
	assert.Equal(t, []byte("pixels"), svc.file.Data)
}

func TestUploadWithoutFile(t *testing.T) {
	r, _ := setupRouter()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("prefix", "works"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file provided.")
}

type failingStore struct{ err error }

func (f failingStore) Put(context.Context, string, []byte, string) (*storage.StoredObject, error) {
	return nil, f.err
}

func (f failingStore) Delete(context.Context, string) error { return nil }

func TestUploadStorageFailureDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := failingStore{err: errors.New("Failed to retrieve CID for uploaded file: uploads/x")}
	r := gin.New()
	NewHandler(service.NewService(store, nil, "https://gw/")).RegisterRoutes(r.Group("/api"))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "x")
	require.NoError(t, err)
	_, err = part.Write([]byte("pixels"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Upload failed.", res["message"])
	assert.Equal(t, "UPLOAD_FAILED", res["code"])
	assert.Equal(t, "Failed to retrieve CID for uploaded file: uploads/x", res["details"])
}
