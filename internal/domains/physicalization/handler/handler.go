package handler

import (
	"stillform-backend/internal/domains/physicalization/model"
	"stillform-backend/internal/domains/physicalization/service"
	"stillform-backend/internal/shared/middleware"
	"stillform-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers physicalization routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/physicalize", h.Request)                       // POST /api/physicalize
	router.GET("/physicalization/:id", h.GetByID)                // GET /api/physicalization/:id
	router.GET("/me/physicalizations", h.ListMyPhysicalizations) // GET /api/me/physicalizations
}

// Request - POST /physicalize
func (h *Handler) Request(c *gin.Context) {
	var req model.RequestPhysicalizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Request(c.Request.Context(), middleware.WalletAddress(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, result)
}

// GetByID - GET /physicalization/:id
func (h *Handler) GetByID(c *gin.Context) {
	view, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, view)
}

// ListMyPhysicalizations - GET /me/physicalizations
func (h *Handler) ListMyPhysicalizations(c *gin.Context) {
	views, err := h.service.ListForOwner(c.Request.Context(), middleware.WalletAddress(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, views)
}
