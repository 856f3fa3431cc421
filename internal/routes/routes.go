package routes

import (
	"github.com/charapedia/charapedia-backend/internal/handler"
	"github.com/charapedia/charapedia-backend/internal/middleware"
	"github.com/charapedia/charapedia-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Setup configures the API routes
func Setup(router *gin.Engine,
	characters *handler.CharacterHandler,
	reviews *handler.ReviewHandler,
	notifications *handler.NotificationHandler,
	works *handler.WorkHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")
	auth := middleware.JWTAuth(jwtManager)
	optionalAuth := middleware.OptionalJWTAuth(jwtManager)

	// Works (public browse)
	workGroup := api.Group("/works")
	workGroup.GET("", works.List)
	workGroup.GET("/:id", works.Get)
	workGroup.GET("/:id/characters", characters.ListByWork)
	workGroup.POST("/:id/characters", auth, characters.Submit)

	// Characters
	characterGroup := api.Group("/characters")
	characterGroup.GET("/:id", optionalAuth, characters.Get)
	characterGroup.GET("/:id/history", auth, characters.History)
	characterGroup.PUT("/:id", auth, characters.Edit)
	characterGroup.DELETE("/:id", auth, characters.Delete)

	// Notifications
	notificationGroup := api.Group("/notifications", auth)
	notificationGroup.GET("", notifications.List)
	notificationGroup.GET("/unread-count", notifications.UnreadCount)
	notificationGroup.PUT("/read-all", notifications.MarkAllAsRead)
	notificationGroup.PUT("/:id/read", notifications.MarkAsRead)
	notificationGroup.DELETE("/:id", notifications.Delete)

	// Admin review queue
	admin := api.Group("/admin", auth, middleware.RequireAdmin())
	admin.GET("/characters/pending", reviews.ListPending)
	admin.POST("/characters/:id/review", reviews.Review)
}
