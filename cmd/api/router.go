package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"stillform-backend/internal/shared/middleware"
	"stillform-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	api := router.Group("/api")
	api.GET("/health", healthCheckHandler(c))

	api.Use(middleware.WalletIdentity(c.JWTManager, c.Config.Wallet.DemoAddress))
	{
		c.AuthHandler.RegisterRoutes(api)
		c.WorkHandler.RegisterRoutes(api, middleware.SanitizeJSON())
		c.PublishHandler.RegisterRoutes(api)
		c.OrderHandler.RegisterRoutes(api)
		c.CollectionHandler.RegisterRoutes(api)
		c.PhysicalizationHandler.RegisterRoutes(api)
		c.UploadHandler.RegisterRoutes(api)
		c.ChainHandler.RegisterRoutes(api)
	}

	return router
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check store
		storeStatus := "memory"
		if appCtx.DB != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			storeStatus = "ok"
			if err := appCtx.DB.Ping(ctx); err != nil {
				storeStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "disabled"
		if appCtx.Redis != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			redisStatus = "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"store":   storeStatus,
			"redis":   redisStatus,
			"storage": appCtx.Storage != nil,
			"rpc":     appCtx.RPC != nil,
		}

		statusCode := http.StatusOK
		if health["status"] != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
