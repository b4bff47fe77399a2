package http

import (
	"github.com/gin-gonic/gin"

	"github.com/harunmuya/gs-app/internal/delivery/http/handler"
	"github.com/harunmuya/gs-app/internal/delivery/http/middleware"
)

type Router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	commentHandler  *handler.CommentHandler
	feedHandler     *handler.FeedHandler
	swipeHandler    *handler.SwipeHandler
	activityHandler *handler.ActivityHandler
	settingsHandler *handler.SettingsHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	commentHandler *handler.CommentHandler,
	feedHandler *handler.FeedHandler,
	swipeHandler *handler.SwipeHandler,
	activityHandler *handler.ActivityHandler,
	settingsHandler *handler.SettingsHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		commentHandler:  commentHandler,
		feedHandler:     feedHandler,
		swipeHandler:    swipeHandler,
		activityHandler: activityHandler,
		settingsHandler: settingsHandler,
		healthHandler:   healthHandler,
		authMiddleware:  authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	// Health check (supports both GET and HEAD)
	router.GET("/health", r.healthHandler.Health)
	router.HEAD("/health", r.healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.healthHandler.Health)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/guest", r.authHandler.Guest)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
			auth.DELETE("/me", r.authMiddleware.RequireAuth(), r.authHandler.DeleteAccount)
		}

		// Public content
		v1.GET("/profiles", r.profileHandler.ListProfiles)
		v1.GET("/profiles/:id", r.authMiddleware.OptionalAuth(), r.profileHandler.GetProfile)
		v1.GET("/comments", r.commentHandler.ListComments)
		v1.POST("/comments", r.commentHandler.SubmitComment)

		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			protected.GET("/feed", r.feedHandler.Discover)

			swipes := protected.Group("/swipes")
			{
				swipes.POST("/like", r.swipeHandler.Like)
				swipes.POST("/pass", r.swipeHandler.Pass)
				swipes.POST("/reset-passes", r.swipeHandler.ResetPasses)
			}

			protected.GET("/likes", r.swipeHandler.ListLikes)
			protected.GET("/matches", r.swipeHandler.ListMatches)
			protected.GET("/saved", r.swipeHandler.ListSaved)
			protected.POST("/saved", r.swipeHandler.Save)
			protected.DELETE("/saved/:id", r.swipeHandler.Unsave)

			activity := protected.Group("/activity")
			{
				activity.GET("", r.activityHandler.List)
				activity.GET("/unread-count", r.activityHandler.UnreadCount)
				activity.PUT("/read-all", r.activityHandler.MarkAllRead)
				activity.PUT("/:id/read", r.activityHandler.MarkRead)
			}

			settings := protected.Group("/settings")
			{
				settings.GET("", r.settingsHandler.GetSettings)
				settings.PUT("", r.settingsHandler.UpdateSettings)
				settings.PUT("/location", r.settingsHandler.UpdateLocation)
			}
		}
	}

	return router
}
