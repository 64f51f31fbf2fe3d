// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/productfindr/backend/internal/config"
	"github.com/productfindr/backend/internal/handlers"
	"github.com/productfindr/backend/internal/middleware"
	"github.com/productfindr/backend/internal/services"
	"github.com/productfindr/backend/internal/store"
	"github.com/productfindr/backend/internal/utils"
)

func Initialize(st *store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	betaService := services.NewBetaTestingService(st)
	productService := services.NewProductService(st, betaService, cfg.Listing.TrialWindow())
	commentService := services.NewCommentService(st)
	reviewService := services.NewReviewService(st)
	showcaseService := services.NewShowcaseService(st, productService, betaService, commentService, reviewService)
	userService := services.NewUserService(st, cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(showcaseService)
	engagementHandler := handlers.NewEngagementHandler(showcaseService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware. Rate limiting is per client IP, so it is switched
	// off under test where all httptest traffic shares one address.
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	if cfg.Environment != "test" {
		r.Use(middleware.GeneralRateLimit())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		if cfg.Environment != "test" {
			auth.Use(middleware.AuthRateLimit())
		}
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/profile", middleware.AuthRequired(), userHandler.UpdateProfile)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetListedProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/listable", productHandler.CanBeListed)
			products.GET("/:id/comments", engagementHandler.GetComments)
			products.GET("/:id/comments/:index", engagementHandler.GetComment)
			products.GET("/:id/reviews", engagementHandler.GetReviews)
			products.GET("/:id/reviews/:index", engagementHandler.GetReview)
			products.GET("/:id/reviews/:index/reviewer", engagementHandler.GetReviewer)

			// Authenticated routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", productHandler.RegisterProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
				protected.POST("/:id/upvote", productHandler.UpvoteProduct)
				protected.PUT("/:id/beta-link", productHandler.UpdateBetaTestingLink)
				protected.POST("/:id/comments", engagementHandler.CommentOnProduct)
				protected.POST("/:id/reviews", engagementHandler.AddReview)
				protected.PUT("/:id/reviews", engagementHandler.AddReview)
			}
		}
	}

	return r
}
