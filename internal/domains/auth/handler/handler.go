package handler

import (
	"stillform-backend/internal/domains/auth/model"
	"stillform-backend/internal/domains/auth/service"
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
	auth := router.Group("/auth")
	{
		auth.POST("/session", h.CreateSession) // POST /api/auth/session
	}
}

// CreateSession - POST /auth/session
func (h *Handler) CreateSession(c *gin.Context) {
	var req model.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, session)
}
