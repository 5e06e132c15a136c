package storage

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

const (
	CoverSize    = 600
	coverQuality = 85
)

type ImageProcessor struct {
	MaxSize int64 // bytes, images above this are not resized
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: 20 * 1024 * 1024} // 20MB
}

// IsResizable reports whether data is a JPEG or PNG within MaxSize
func (p *ImageProcessor) IsResizable(data []byte) bool {
	if int64(len(data)) > p.MaxSize {
		return false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false
	}
	return format == "jpeg" || format == "png"
}

// Cover fits the image into a CoverSize square and encodes it as JPEG
func (p *ImageProcessor) Cover(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, CoverSize, CoverSize, imaging.Lanczos)
	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: coverQuality}); err != nil {
		return nil, fmt.Errorf("cannot encode cover: %w", err)
	}
	return b.Bytes(), nil
}
