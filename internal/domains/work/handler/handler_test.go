package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/domains/work/repository"
	"stillform-backend/internal/domains/work/service"
	"stillform-backend/internal/infrastructure/docstore"
	"stillform-backend/internal/shared/middleware"
	"stillform-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testWallet = "0x9999999999999999999999999999999999999999"

func setupRouter(t *testing.T) (*gin.Engine, repository.RepositoryInterface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := docstore.NewMemory[model.Work]()
	_, err := store.Seed(context.Background(), model.SeedWorks())
	require.NoError(t, err)

	repo := repository.NewRepository(store)
	h := NewHandler(service.NewService(repo, nil, time.Minute))

	r := gin.New()
	r.Use(middleware.WalletIdentity(jwt.NewManager("secret", time.Hour), testWallet))
	r.GET("/works", h.SearchWorks)
	r.GET("/works/export", h.ExportWorks)
	r.GET("/works/:slug", h.GetWork)
	r.POST("/works/create", middleware.SanitizeJSON(), h.CreateWork)
	r.POST("/listings", h.CreateListing)
	r.DELETE("/listings/:id", h.DeleteListing)
	return r, repo
}

func doRequest(r *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSearchWorksStorefront(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/works", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["total"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(12), body["pageSize"])

	items := body["items"].([]interface{})
	require.Len(t, items, 3)
	assert.Equal(t, "2", items[0].(map[string]interface{})["id"])
}

func TestSearchWorksFilters(t *testing.T) {
	r, _ := setupRouter(t)

	filters := url.QueryEscape(`{"price":{"min":0.2,"max":null}}`)
	w := doRequest(r, http.MethodGet, "/works?filters="+filters, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].(map[string]interface{})["id"])
}

func TestSearchWorksInvalidFilters(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/works?filters=%7Bbroken", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid filters format", decodeBody(t, w)["message"])
}

func TestGetWork(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/works/forest-spirit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4", decodeBody(t, w)["id"])

	w = doRequest(r, http.MethodGet, "/works/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Work not found", decodeBody(t, w)["message"])
}

func TestCreateWork(t *testing.T) {
	r, repo := setupRouter(t)

	payload := []byte(`{
		"workType": "standard",
		"title": "Quiet Harbor",
		"description": "Boats resting at dawn in a quiet harbor.",
		"editions": [{"price": 0.25, "supply": 10}]
	}`)
	w := doRequest(r, http.MethodPost, "/works/create", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Quiet Harbor", body["title"])
	assert.Equal(t, "draft", body["status"])

	stored, err := repo.GetByID(context.Background(), body["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, testWallet, stored.Creator.Address)
}

func TestCreateWorkKeepsPlainText(t *testing.T) {
	r, repo := setupRouter(t)

	payload := []byte(`{
		"workType": "standard",
		"title": "A & B's <3",
		"description": "Tom & Jerry, a 5 < 10 study <b>in ink</b>",
		"editions": [{"price": 0.25, "supply": 10}]
	}`)
	w := doRequest(r, http.MethodPost, "/works/create", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "A & B's <3", body["title"])
	assert.Equal(t, "Tom & Jerry, a 5 < 10 study in ink", body["description"])
	assert.NotContains(t, body["slug"], "amp")

	stored, err := repo.GetByID(context.Background(), body["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "A & B's <3", stored.Title)
}

func TestCreateWorkValidation(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/works/create", []byte(`{"workType":"blindbox","title":"Box","description":"A small mystery box.","editions":[{"price":1,"supply":1}],"blindboxStyles":[{"name":"A","probability":40},{"name":"B","probability":40}]}`))
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.NotEmpty(t, body["errors"])
}

func TestListingLifecycle(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodDelete, "/listings/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unlisted", decodeBody(t, w)["status"])

	w = doRequest(r, http.MethodPost, "/listings", []byte(`{"workId":"4","editionId":1,"price":0.2,"currency":"SUI"}`))
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "listed", body["status"])
	assert.NotEmpty(t, body["listingId"])

	updated := body["updatedWork"].(map[string]interface{})
	edition := updated["editions"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "0.2", edition["price"])
}

func TestListingErrors(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/listings", []byte(`{"workId":"missing","editionId":1,"price":1,"currency":"ETH"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodPost, "/listings", []byte(`{"workId":"1","editionId":1,"price":0,"currency":"ETH"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodDelete, "/listings/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportWorks(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/works/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "catalog_")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Catalog")
	require.NoError(t, err)
	assert.Len(t, rows, 4) // header + 3 visible works
}
