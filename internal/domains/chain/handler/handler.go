package handler

import (
	"stillform-backend/internal/domains/chain/service"
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
	router.GET("/chain/collections/:address", h.GetCollection) // GET /api/chain/collections/:address?chainId=
}

// GetCollection - GET /chain/collections/:address
func (h *Handler) GetCollection(c *gin.Context) {
	info, err := h.service.GetCollection(c.Request.Context(), c.Param("address"), c.Query("chainId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, info)
}
