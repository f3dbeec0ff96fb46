package router

import (
	"github.com/gin-gonic/gin"

	"github.com/platehub/backend/internal/api"
	"github.com/platehub/backend/internal/middleware"
	"github.com/platehub/backend/internal/service"
)

// Options carries the handlers and middleware wired into the route table.
// Rate limiters are optional; nil means the endpoint is not limited.
type Options struct {
	AuthHandler    *api.AuthHandler
	RecipeHandler  *api.RecipeHandler
	ProfileHandler *api.ProfileHandler
	HealthHandler  *api.HealthHandler
	AuthService    service.IAuthService
	AllowedOrigins []string

	RecipeCreationLimiter *middleware.RateLimiter
	LikeToggleLimiter     *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(opts Options) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(opts.AllowedOrigins))

	router.GET("/health", opts.HealthHandler.Health)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", opts.AuthHandler.Register)
		auth.POST("/login", opts.AuthHandler.Login)
	}

	profile := v1.Group("/profile")
	profile.Use(middleware.AuthMiddleware(opts.AuthService))
	{
		profile.GET("", opts.ProfileHandler.GetProfile)
	}

	recipes := v1.Group("/recipes")
	{
		// Reads are open; a valid token still threads the caller identity
		// through so user_has_liked can be computed.
		recipes.GET("", middleware.OptionalAuthMiddleware(opts.AuthService), opts.RecipeHandler.ListRecipes)
		recipes.GET("/:id", middleware.OptionalAuthMiddleware(opts.AuthService), opts.RecipeHandler.GetRecipe)

		authed := recipes.Group("")
		authed.Use(middleware.AuthMiddleware(opts.AuthService))
		{
			create := authed.Group("")
			if opts.RecipeCreationLimiter != nil {
				create.Use(opts.RecipeCreationLimiter.RateLimitMiddleware())
			}
			create.POST("", opts.RecipeHandler.CreateRecipe)

			authed.PUT("/:id", opts.RecipeHandler.UpdateRecipe)
			authed.PATCH("/:id", opts.RecipeHandler.UpdateRecipe)
			authed.DELETE("/:id", opts.RecipeHandler.DeleteRecipe)
			authed.POST("/:id/image", opts.RecipeHandler.UploadImage)

			like := authed.Group("")
			if opts.LikeToggleLimiter != nil {
				like.Use(opts.LikeToggleLimiter.RateLimitMiddleware())
			}
			like.POST("/:id/like", opts.RecipeHandler.ToggleLike)
		}
	}

	return router
}
