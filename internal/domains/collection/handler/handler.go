package handler

import (
	"stillform-backend/internal/domains/collection/model"
	"stillform-backend/internal/domains/collection/service"
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

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/me/collections", h.SearchMyCollection) // GET /api/me/collections
}

// SearchMyCollection - GET /me/collections
// Query params: query, filters ({"status":[],"chains":[]}), sort (price|purchaseDate), page, pageSize
func (h *Handler) SearchMyCollection(c *gin.Context) {
	var q model.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.service.Search(c.Request.Context(), middleware.WalletAddress(c), q)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, page)
}
