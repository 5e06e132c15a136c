package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stillform-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoWallet = "0xDEF0000000000000000000000000000000000456"

func init() {
	gin.SetMode(gin.TestMode)
}

func walletRouter(tokens TokenValidator) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), WalletIdentity(tokens, demoWallet))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, WalletAddress(c))
	})
	return r
}

func TestWalletIdentityFallsBackToDemoWallet(t *testing.T) {
	r := walletRouter(jwt.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, strings.ToLower(demoWallet), w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestWalletIdentityUsesHeader(t *testing.T) {
	r := walletRouter(jwt.NewManager("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(WalletHeader, "0xABC")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "0xabc", w.Body.String())
}

func TestWalletIdentityPrefersBearerToken(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	token, _, err := manager.GenerateWalletToken("0x1111111111111111111111111111111111111111")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(WalletHeader, "0xABC")
	w := httptest.NewRecorder()
	walletRouter(manager).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", w.Body.String())
}

func TestWalletIdentityRejectsBadToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	walletRouter(jwt.NewManager("secret", time.Hour)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestIDIsReused(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRecoveryReturnsErrorShape(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["message"])
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
}

func TestSanitizeJSONStripsMarkup(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeJSON())
	r.POST("/echo", func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", raw)
	})

	body := `{"title":"<script>alert(1)</script>Dawn","editions":[{"price":0.5,"supply":3}],"tags":["<b>bold</b>"]}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Dawn", out["title"])
	assert.Equal(t, []interface{}{"bold"}, out["tags"])

	editions := out["editions"].([]interface{})
	assert.Equal(t, 0.5, editions[0].(map[string]interface{})["price"])
}

func TestSanitizeBytesKeepsPlainText(t *testing.T) {
	raw := []byte(`{"title":"Tom & Jerry","description":"Artist's 5 < 10 study","tags":["A & B's <3"]}`)

	cleaned, err := SanitizeBytes(bluemonday.StrictPolicy(), raw)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(cleaned, &out))
	assert.Equal(t, "Tom & Jerry", out["title"])
	assert.Equal(t, "Artist's 5 < 10 study", out["description"])
	assert.Equal(t, []interface{}{"A & B's <3"}, out["tags"])
}

func TestSanitizeBytesKeepsMalformedError(t *testing.T) {
	_, err := SanitizeBytes(bluemonday.StrictPolicy(), []byte(`{"title":`))
	assert.Error(t, err)
}
