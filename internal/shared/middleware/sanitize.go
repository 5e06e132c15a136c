package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"strings"

	"stillform-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeJSON strips markup from every string in a JSON request body.
// Plain text such as "&" or "5 < 10" is kept as written.
// Multipart bodies are passed through; the publish handler sanitizes its payload field.
func SanitizeJSON() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Body == nil || !strings.HasPrefix(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Invalid request body")
			c.Abort()
			return
		}

		cleaned, err := SanitizeBytes(policy, raw)
		if err != nil {
			// leave malformed JSON for the handler to report
			cleaned = raw
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(cleaned))
		c.Request.ContentLength = int64(len(cleaned))
		c.Next()
	}
}

// SanitizeBytes decodes raw JSON, sanitizes all string values and re-encodes it
func SanitizeBytes(policy *bluemonday.Policy, raw []byte) ([]byte, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	return json.Marshal(sanitizeValue(policy, v))
}

func sanitizeValue(policy *bluemonday.Policy, v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return html.UnescapeString(policy.Sanitize(val))
	case map[string]interface{}:
		for k, item := range val {
			val[k] = sanitizeValue(policy, item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = sanitizeValue(policy, item)
		}
		return val
	default:
		return v
	}
}
