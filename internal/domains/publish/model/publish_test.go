package model

import (
	"testing"

	uploadmodel "stillform-backend/internal/domains/upload/model"
	workmodel "stillform-backend/internal/domains/work/model"

	"github.com/stretchr/testify/assert"
)

func TestMediaKindOf(t *testing.T) {
	tests := []struct {
		file uploadmodel.File
		want workmodel.MediaKind
	}{
		{uploadmodel.File{Name: "a.png", ContentType: "image/png"}, workmodel.MediaImage},
		{uploadmodel.File{Name: "a.mp4", ContentType: "video/mp4"}, workmodel.MediaVideo},
		{uploadmodel.File{Name: "a.glb", ContentType: "model/gltf-binary"}, workmodel.Media3D},
		{uploadmodel.File{Name: "a.glb", ContentType: "application/octet-stream"}, workmodel.Media3D},
		{uploadmodel.File{Name: "scan.GLTF"}, workmodel.Media3D},
		{uploadmodel.File{Name: "noext"}, workmodel.MediaImage},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MediaKindOf(tt.file), tt.file.Name)
	}
}
