package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/platehub/backend/internal/database"
	"github.com/platehub/backend/internal/models"
	"github.com/platehub/backend/internal/types"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// MaxOpenConns(1) keeps every query on the same in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	auth := NewAuthService(db, "test-secret")
	user, _, err := auth.Register(context.Background(), &types.RegisterRequest{
		Username: username,
		Password: "password123",
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return user
}

func createTestRecipe(t *testing.T, db *gorm.DB, owner *models.User, title string) *types.RecipeView {
	t.Helper()

	recipes := NewRecipeService(db)
	view, err := recipes.CreateRecipe(context.Background(), owner.ID, &types.CreateRecipeRequest{
		Title:        title,
		Category:     models.CategoryDinner,
		DietType:     models.DietVegetarian,
		Ingredients:  "some ingredients",
		Instructions: "some instructions",
	})
	require.NoError(t, err)
	return view
}
