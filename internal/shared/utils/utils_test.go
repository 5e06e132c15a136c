package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := map[string]string{
		"Concrete Jungle (Blind Box)": "concrete-jungle-blind-box",
		"  Études   à la Plage ":      "etudes-a-la-plage",
		"Nguyễn Nhật Ánh":             "nguyen-nhat-anh",
		"---":                         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, GenerateSlug(in), in)
	}
}

func TestNewID(t *testing.T) {
	id := NewID("ord")
	assert.True(t, strings.HasPrefix(id, "ord_"))
	assert.Len(t, id, len("ord_")+12)
	assert.NotEqual(t, id, NewID("ord"))
}
