package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newsportal-backend/internal/shared/middleware"
	"newsportal-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// The share-preview endpoint lives outside /api/v1 because its URLs
	// are pasted into chat apps and must stay short and stable.
	router.GET("/share/:slug", c.SharePreviewHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/db-test", databaseTestHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupArticleRoutes(v1, c)
		setupPodcastRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupBannerRoutes(v1, c)
		setupNewsletterRoutes(v1, c)
		setupAdminRoutes(v1, c)
		setupFunctionRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/refresh", c.AuthHandler.Refresh)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.Auth(c.JWTManager))
	{
		users.GET("/me", c.AuthHandler.GetMe)
		users.PUT("/me", c.AuthHandler.UpdateMe)
	}
}

// ========================================
// ARTICLE ROUTES (public)
// ========================================
func setupArticleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	articles := v1.Group("/articles")
	{
		articles.GET("", c.ArticleHandler.List)
		articles.GET("/featured", c.ArticleHandler.ListFeatured)
		articles.GET("/:slug", c.ArticleHandler.GetBySlug)
		articles.GET("/:slug/comments", c.CommentHandler.ListForArticle)
	}
}

// ========================================
// PODCAST ROUTES (public)
// ========================================
func setupPodcastRoutes(v1 *gin.RouterGroup, c *container.Container) {
	podcasts := v1.Group("/podcasts")
	{
		podcasts.GET("", c.PodcastHandler.List)
		podcasts.GET("/featured", c.PodcastHandler.ListFeatured)
		podcasts.GET("/:slug", c.PodcastHandler.GetBySlug)
	}
}

// ========================================
// CATEGORY ROUTES (public)
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:slug", c.CategoryHandler.GetBySlug)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	comments.Use(middleware.Auth(c.JWTManager))
	{
		comments.POST("", c.CommentHandler.Create)
	}
}

// ========================================
// BANNER ROUTES (public)
// ========================================
func setupBannerRoutes(v1 *gin.RouterGroup, c *container.Container) {
	banners := v1.Group("/banners")
	{
		banners.GET("", c.BannerHandler.ListVisible)
	}
}

// ========================================
// NEWSLETTER ROUTES (public)
// ========================================
func setupNewsletterRoutes(v1 *gin.RouterGroup, c *container.Container) {
	newsletter := v1.Group("/newsletter")
	{
		newsletter.POST("/subscribe", c.NewsletterHandler.Subscribe)
		newsletter.POST("/unsubscribe", c.NewsletterHandler.Unsubscribe)
	}
}

// ========================================
// ADMIN CONSOLE ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.Auth(c.JWTManager))

	// Content: authors reach the console, the services keep publish and
	// feature away from them.
	articles := admin.Group("/articles", middleware.Staff())
	{
		articles.GET("", c.ArticleHandler.AdminList)
		articles.POST("", c.ArticleHandler.Create)
		articles.PUT("/:id", c.ArticleHandler.Update)
		articles.POST("/:id/publish", c.ArticleHandler.Publish)
		articles.POST("/:id/feature", c.ArticleHandler.Feature)
		articles.DELETE("/:id", c.ArticleHandler.Delete)
	}

	podcasts := admin.Group("/podcasts", middleware.Staff())
	{
		podcasts.GET("", c.PodcastHandler.AdminList)
		podcasts.POST("", c.PodcastHandler.Create)
		podcasts.PUT("/:id", c.PodcastHandler.Update)
		podcasts.POST("/:id/publish", c.PodcastHandler.Publish)
		podcasts.POST("/:id/feature", c.PodcastHandler.Feature)
		podcasts.DELETE("/:id", c.PodcastHandler.Delete)
	}

	categories := admin.Group("/categories", middleware.Editorial())
	{
		categories.POST("", c.CategoryHandler.Create)
		categories.PUT("/:id", c.CategoryHandler.Update)
		categories.DELETE("/:id", c.CategoryHandler.Delete)
	}

	comments := admin.Group("/comments", middleware.Editorial())
	{
		comments.GET("", c.CommentHandler.AdminList)
		comments.PUT("/:id/status", c.CommentHandler.Moderate)
		comments.DELETE("/:id", c.CommentHandler.Delete)
	}

	banners := admin.Group("/banners", middleware.Editorial())
	{
		banners.GET("", c.BannerHandler.AdminList)
		banners.POST("", c.BannerHandler.Create)
		banners.PUT("/:id", c.BannerHandler.Update)
		banners.DELETE("/:id", c.BannerHandler.Delete)
	}

	newsletter := admin.Group("/newsletter", middleware.Admin())
	{
		newsletter.GET("/subscribers", c.NewsletterHandler.AdminList)
	}

	users := admin.Group("/users", middleware.Admin())
	{
		users.GET("", c.UserAdminHandler.List)
		users.POST("", c.UserAdminHandler.Create)
		users.GET("/stats", c.UserAdminHandler.Stats)
		users.PUT("/:id/role", c.UserAdminHandler.UpdateRole)
		users.POST("/:id/ban", c.UserAdminHandler.Ban)
		users.POST("/:id/unban", c.UserAdminHandler.Unban)
	}

	// Media uploads are unavailable when object storage is down;
	// registering the routes conditionally turns that into a plain 404.
	if c.MediaHandler != nil {
		media := admin.Group("/media", middleware.Staff())
		{
			media.POST("/images", c.MediaHandler.UploadImage)
			media.POST("/audio", c.MediaHandler.UploadAudio)
			media.DELETE("", c.MediaHandler.Delete)
		}
	}
}

// ========================================
// OPERATION ENDPOINTS
// ========================================
// Action-discriminated endpoints kept route-compatible with the
// serverless functions they replaced.
func setupFunctionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	functions := v1.Group("/functions")
	{
		functions.POST("/content-mutation",
			middleware.Auth(c.JWTManager), c.ContentMutation.Handle)

		// Anonymous readers generate most engagement traffic; identity
		// is attached only when present.
		functions.POST("/engagement-tracking",
			middleware.OptionalAuth(c.JWTManager), c.EngagementTracking.Handle)

		functions.POST("/identity-administration",
			middleware.Auth(c.JWTManager), c.IdentityAdmin.Handle)
	}
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
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

// ========================================
// DATABASE TEST HANDLER
// ========================================
func databaseTestHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Database not connected",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var version string
		err := appCtx.DB.Pool.QueryRow(ctx, "SELECT version()").Scan(&version)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Query failed: %v", err),
			})
			return
		}

		stats := appCtx.DB.Pool.Stat()

		c.JSON(http.StatusOK, gin.H{
			"message": "Database test successful",
			"database": gin.H{
				"postgres_version": version,
				"pool_stats": gin.H{
					"total_connections":    stats.TotalConns(),
					"idle_connections":     stats.IdleConns(),
					"acquired_connections": stats.AcquiredConns(),
					"max_connections":      stats.MaxConns(),
				},
			},
		})
	}
}
