package handler

import (
	"io"

	"stillform-backend/internal/domains/upload/model"
	"stillform-backend/internal/domains/upload/service"
	"stillform-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps the multipart file read into memory
const maxUploadSize = 100 << 20

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/upload", h.Info)    // GET /api/upload
	router.POST("/upload", h.Upload) // POST /api/upload
}

// Info - GET /upload
func (h *Handler) Info(c *gin.Context) {
	response.OK(c, model.InfoResponse{
		Message: "This is the file upload endpoint. Please use POST to upload files.",
	})
}

// Upload - POST /upload (multipart: file, prefix)
func (h *Handler) Upload(c *gin.Context) {
	file, err := ReadFormFile(c, "file")
	if err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.service.Upload(c.Request.Context(), c.PostForm("prefix"), *file)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, result)
}

// ReadFormFile loads a multipart file field into memory
func ReadFormFile(c *gin.Context, field string) (*model.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, model.ToAppError(model.ErrNoFile)
	}
	if header.Size > maxUploadSize {
		return nil, model.ToAppError(model.ErrFileTooLarge)
	}

	f, err := header.Open()
	if err != nil {
		return nil, model.ToAppError(model.ErrNoFile)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, model.ToAppError(model.ErrNoFile)
	}

	return &model.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
