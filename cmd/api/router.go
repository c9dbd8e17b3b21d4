package api

import (
	"net/http"

	"smartlists-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/google", authHandler.GoogleSignIn)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		// List routes (protected)
		lists := api.Group("/lists")
		lists.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			lists.GET("", h.listHandler.GetLists)
			lists.POST("", h.listHandler.CreateList)
			lists.POST("/analyze-purpose", h.listHandler.AnalyzePurpose)
			lists.PATCH("/:id", h.listHandler.UpdateList)
			lists.DELETE("/:id", h.listHandler.DeleteList)

			lists.GET("/:id/items", h.itemHandler.GetItems)
			lists.POST("/:id/items", h.itemHandler.AddItem)
			lists.PUT("/:id/items", h.itemHandler.UpdateItem)
			lists.DELETE("/:id/items", h.itemHandler.DeleteItems)
		}

		// Free-text input routing (protected)
		api.POST("/input", delivery.AuthMiddleware(h.authUsecase), h.captureHandler.ProcessInput)

		// Settings routes
		settings := api.Group("/settings")
		{
			// Per-user settings document (protected)
			settings.GET("/user", delivery.AuthMiddleware(h.authUsecase), h.settingsHandler.GetSettings)
			settings.PUT("/user", delivery.AuthMiddleware(h.authUsecase), h.settingsHandler.UpdateSettings)

			// Runtime AI configuration
			settings.GET("/ai", GetAISettings)
			settings.PUT("/ai", UpdateAISettings)
			settings.POST("/ai/test", TestAIConnection)
		}
	}
}
