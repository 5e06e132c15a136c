package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/domains/work/service"
	"stillform-backend/internal/shared/middleware"
	"stillform-backend/internal/shared/response"
	"stillform-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler - HTTP handlers for works and listings
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers catalog and listing routes.
// sanitize is applied to routes accepting free-text JSON.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, sanitize gin.HandlerFunc) {
	works := router.Group("/works")
	{
		works.GET("", h.SearchWorks)                  // GET /api/works
		works.GET("/export", h.ExportWorks)           // GET /api/works/export
		works.POST("/create", sanitize, h.CreateWork) // POST /api/works/create
		works.GET("/:slug", h.GetWork)                // GET /api/works/:slug
	}

	listings := router.Group("/listings")
	{
		listings.POST("", h.CreateListing)       // POST /api/listings
		listings.DELETE("/:id", h.DeleteListing) // DELETE /api/listings/:id
	}
}

// SearchWorks - GET /works
// Query params: status, query, filters (JSON), sort (field:dir), page, pageSize
func (h *Handler) SearchWorks(c *gin.Context) {
	var q model.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, page)
}

// GetWork - GET /works/:slug
func (h *Handler) GetWork(c *gin.Context) {
	work, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, work)
}

// CreateWork - POST /works/create
// Body is a standard or blindbox draft, selected by workType
func (h *Handler) CreateWork(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := model.DecodeDraft(raw)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if wallet := middleware.WalletAddress(c); wallet != "" {
		draft = model.WithCreator(draft, model.Creator{Address: wallet, DisplayName: wallet})
	}

	result, err := h.service.CreateWork(c.Request.Context(), draft)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, result)
}

// ExportWorks - GET /works/export
// Same filters as SearchWorks, every match in one XLSX sheet
func (h *Handler) ExportWorks(c *gin.Context) {
	var q model.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	f, count, err := h.service.ExportToExcel(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("catalog_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		logger.Error("failed to stream catalog export", err)
		return
	}

	logger.Info("catalog exported", map[string]interface{}{"rows": count})
}

// CreateListing - POST /listings
func (h *Handler) CreateListing(c *gin.Context) {
	var req model.ListWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation Error", map[string]string{
			"_": err.Error(),
		})
		return
	}

	result, err := h.service.ListWork(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, result)
}

// DeleteListing - DELETE /listings/:id (id is the work id)
func (h *Handler) DeleteListing(c *gin.Context) {
	result, err := h.service.UnlistWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, result)
}
