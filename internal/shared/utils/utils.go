package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns prefix_ followed by 12 random hex characters (e.g. "ord_3f2a9c1b7d4e")
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + raw[:12]
}

// ShortID is the random part of NewID without a prefix
func ShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
