package handler

import (
	"stillform-backend/internal/domains/publish/service"
	uploadhandler "stillform-backend/internal/domains/upload/handler"
	workmodel "stillform-backend/internal/domains/work/model"
	"stillform-backend/internal/shared/apperror"
	"stillform-backend/internal/shared/middleware"
	"stillform-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

type Handler struct {
	service service.ServiceInterface
	policy  *bluemonday.Policy
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service, policy: bluemonday.StrictPolicy()}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/works/publish", h.Publish) // POST /api/works/publish (multipart: file, payload)
}

// Publish - POST /works/publish
func (h *Handler) Publish(c *gin.Context) {
	file, err := uploadhandler.ReadFormFile(c, "file")
	if err != nil {
		response.FromError(c, err)
		return
	}

	payload := c.PostForm("payload")
	if payload == "" {
		response.FromError(c, apperror.Validation("PAYLOAD_REQUIRED", "Payload is required", map[string]string{
			"payload": "cannot be blank",
		}))
		return
	}

	cleaned, err := middleware.SanitizeBytes(h.policy, []byte(payload))
	if err != nil {
		response.FromError(c, apperror.Validation("VALIDATION_ERROR", "Validation Error", map[string]string{
			"payload": "must be valid JSON",
		}))
		return
	}

	draft, err := workmodel.DecodeDraft(cleaned)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if wallet := middleware.WalletAddress(c); wallet != "" {
		draft = workmodel.WithCreator(draft, workmodel.Creator{Address: wallet, DisplayName: wallet})
	}

	result, err := h.service.Publish(c.Request.Context(), draft, *file)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, result)
}
