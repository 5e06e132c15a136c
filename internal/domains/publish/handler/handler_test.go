package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"stillform-backend/internal/domains/publish/model"
	uploadmodel "stillform-backend/internal/domains/upload/model"
	workmodel "stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWallet = "0x1111111111111111111111111111111111111111"

type stubService struct {
	draft workmodel.Draft
	file  uploadmodel.File
}

func (s *stubService) Publish(_ context.Context, d workmodel.Draft, f uploadmodel.File) (*model.Response, error) {
	s.draft = d
	s.file = f
	return &model.Response{
		Work:   &workmodel.CreateWorkResponse{ID: "work_1", Status: workmodel.StatusDraft, Draft: d},
		Upload: &uploadmodel.Result{Success: true, Key: "works/1-a.png", CID: "bafy"},
	}, nil
}

func multipartBody(t *testing.T, payload string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if withFile {
		fw, err := mw.CreateFormFile("file", "a.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	if payload != "" {
		require.NoError(t, mw.WriteField("payload", payload))
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func serve(t *testing.T, svc *stubService, payload string, withFile bool) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.WalletIdentity(nil, testWallet))
	NewHandler(svc).RegisterRoutes(api)

	body, contentType := multipartBody(t, payload, withFile)
	req := httptest.NewRequest(http.MethodPost, "/api/works/publish", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublish(t *testing.T) {
	svc := &stubService{}
	payload := `{"workType":"standard","title":"<b>Harbor</b>","description":"Boats resting at dawn.","editions":[{"price":0.2,"supply":3}]}`

	w := serve(t, svc, payload, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"work_1"`)

	require.NotNil(t, svc.draft)
	common := workmodel.Common(svc.draft)
	assert.Equal(t, "Harbor", common.Title)
	require.NotNil(t, common.Creator)
	assert.Equal(t, testWallet, common.Creator.Address)
	assert.Equal(t, []byte("png-bytes"), svc.file.Data)
}

func TestPublishValidation(t *testing.T) {
	w := serve(t, &stubService{}, `{"workType":"standard"}`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "NO_FILE")

	w = serve(t, &stubService{}, "", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PAYLOAD_REQUIRED")

	w = serve(t, &stubService{}, `{broken`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
