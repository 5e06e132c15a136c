package middleware

import (
	"strings"

	"stillform-backend/internal/shared/response"
	"stillform-backend/pkg/jwt"
	"stillform-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	WalletHeader = "X-Wallet-Address"
	walletKey    = "wallet_address"
)

// TokenValidator is satisfied by *jwt.Manager
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// WalletIdentity resolves the caller wallet.
// Order: Bearer session token, then X-Wallet-Address, then the demo wallet.
// A bearer token that fails validation is rejected with 401.
func WalletIdentity(tokens TokenValidator, demoWallet string) gin.HandlerFunc {
	return func(c *gin.Context) {
		wallet := ""

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(c, "Invalid authorization header format")
				c.Abort()
				return
			}

			claims, err := tokens.ValidateToken(parts[1])
			if err != nil {
				logger.Warn("wallet session rejected", map[string]interface{}{
					"request_id": c.GetString(requestIDKey),
					"error":      err.Error(),
				})
				response.Unauthorized(c, "Invalid session token")
				c.Abort()
				return
			}
			wallet = claims.Address()
		}

		if wallet == "" {
			wallet = strings.TrimSpace(c.GetHeader(WalletHeader))
		}
		if wallet == "" {
			wallet = demoWallet
		}

		c.Set(walletKey, strings.ToLower(wallet))
		c.Next()
	}
}

// WalletAddress returns the lowercased wallet resolved by WalletIdentity
func WalletAddress(c *gin.Context) string {
	return c.GetString(walletKey)
}
