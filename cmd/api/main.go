package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/platehub/backend/config"
	"github.com/platehub/backend/internal/api"
	"github.com/platehub/backend/internal/database"
	"github.com/platehub/backend/internal/middleware"
	"github.com/platehub/backend/internal/router"
	"github.com/platehub/backend/internal/server"
	"github.com/platehub/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs rate limiting only; run without it when unavailable.
	var creationLimiter, likeLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	} else {
		creationLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
		likeLimiter = middleware.NewLikeToggleRateLimiter(redisClient)
	}

	var imageService service.IImageService
	if s3Cfg, err := config.NewS3Config(context.Background(), cfg.S3Bucket); err != nil {
		log.Printf("S3 unavailable, image uploads disabled: %v", err)
		imageService = nil
	} else {
		imageService = service.NewImageService(s3Cfg)
	}

	var healthDB *database.HealthDB
	if cfg.DBDriver == "postgres" {
		healthDB, err = database.NewHealthDB(cfg)
		if err != nil {
			log.Printf("Health-check connection unavailable: %v", err)
		}
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	likeService := service.NewLikeService(db)
	profileService := service.NewProfileService(db, recipeService)

	engine := router.SetupRouter(router.Options{
		AuthHandler:           api.NewAuthHandler(authService),
		RecipeHandler:         api.NewRecipeHandler(recipeService, likeService, imageService),
		ProfileHandler:        api.NewProfileHandler(profileService),
		HealthHandler:         api.NewHealthHandler(healthDB),
		AuthService:           authService,
		AllowedOrigins:        cfg.AllowedOrigins,
		RecipeCreationLimiter: creationLimiter,
		LikeToggleLimiter:     likeLimiter,
	})

	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
