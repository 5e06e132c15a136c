package model

import (
	"mime"
	"path"
	"strings"

	uploadmodel "stillform-backend/internal/domains/upload/model"
	workmodel "stillform-backend/internal/domains/work/model"
)

// Saga step names, reported to the caller when a step fails
const (
	StepUploadMedia      = "upload-media"
	StepVerifyCollection = "verify-collection"
	StepCreateWork       = "create-work"
)

// MediaPrefix is the storage prefix for published work media
const MediaPrefix = "works"

// Response is returned by POST /works/publish
type Response struct {
	Work   *workmodel.CreateWorkResponse `json:"work"`
	Upload *uploadmodel.Result           `json:"upload"`
}

// MediaKindOf guesses the media kind from the content type, falling back to the extension
func MediaKindOf(file uploadmodel.File) workmodel.MediaKind {
	contentType := file.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(path.Ext(file.Name))
	}

	switch {
	case strings.HasPrefix(contentType, "video/"):
		return workmodel.MediaVideo
	case strings.HasPrefix(contentType, "model/"):
		return workmodel.Media3D
	}

	switch strings.ToLower(path.Ext(file.Name)) {
	case ".glb", ".gltf", ".obj", ".usdz":
		return workmodel.Media3D
	}
	return workmodel.MediaImage
}
