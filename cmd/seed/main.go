package main

import (
	"context"
	"log"

	"github.com/platehub/backend/config"
	"github.com/platehub/backend/internal/database"
	"github.com/platehub/backend/internal/models"
	"github.com/platehub/backend/internal/service"
	"github.com/platehub/backend/internal/types"
)

// Seeds a handful of users and recipes for local development.
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

	ctx := context.Background()
	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	likeService := service.NewLikeService(db)

	users := []types.RegisterRequest{
		{Username: "alice", Password: "password123", Email: "alice@example.com", FirstName: "Alice", LastName: "Walker"},
		{Username: "bob", Password: "password123", Email: "bob@example.com", FirstName: "Bob", LastName: "Reyes"},
	}

	var seeded []*models.User
	for _, u := range users {
		user, _, err := authService.Register(ctx, &u)
		if err != nil {
			log.Printf("Skipping user %s: %v", u.Username, err)
			continue
		}
		seeded = append(seeded, user)
	}

	if len(seeded) < 2 {
		log.Println("Seed users already present, nothing to do")
		return
	}

	recipes := []types.CreateRecipeRequest{
		{
			Title:        "Shakshuka",
			Category:     models.CategoryBreakfast,
			DietType:     models.DietVegetarian,
			Description:  "Eggs poached in a spiced tomato and pepper sauce.",
			Ingredients:  "eggs, tomatoes, bell peppers, onion, cumin, paprika",
			Instructions: "Soften the vegetables, add spices and tomatoes, crack in the eggs and simmer until just set.",
		},
		{
			Title:        "Lentil Curry",
			Category:     models.CategoryDinner,
			DietType:     models.DietVegan,
			Description:  "A weeknight red lentil curry.",
			Ingredients:  "red lentils, coconut milk, onion, garlic, curry powder",
			Instructions: "Fry the aromatics, stir in curry powder, add lentils and coconut milk, simmer 20 minutes.",
		},
	}

	for i, r := range recipes {
		owner := seeded[i%len(seeded)]
		view, err := recipeService.CreateRecipe(ctx, owner.ID, &r)
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", r.Title, err)
		}
		// Each user likes the other's recipe.
		liker := seeded[(i+1)%len(seeded)]
		if _, err := likeService.ToggleLike(ctx, liker.ID, view.ID); err != nil {
			log.Fatalf("Failed to seed like on %q: %v", r.Title, err)
		}
	}

	log.Printf("Seeded %d users and %d recipes", len(seeded), len(recipes))
}
