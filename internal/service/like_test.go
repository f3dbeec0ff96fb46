package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/platehub/backend/internal/models"
)

func TestToggleLikeFlipsState(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	liker := createTestUser(t, db, "liker")
	recipe := createTestRecipe(t, db, owner, "Toast")

	likes := NewLikeService(db)
	ctx := context.Background()

	liked, err := likes.ToggleLike(ctx, liker.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := likes.LikeCount(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	has, err := likes.HasLiked(ctx, liker.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, has)

	// Second toggle is the inverse of the first.
	liked, err = likes.ToggleLike(ctx, liker.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = likes.LikeCount(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	has, err = likes.HasLiked(ctx, liker.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestToggleLikeMissingRecipe(t *testing.T) {
	db := setupTestDB(t)
	liker := createTestUser(t, db, "liker")

	likes := NewLikeService(db)
	_, err := likes.ToggleLike(context.Background(), liker.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "no like row should be created for a missing recipe")
}

func TestLikeUniqueConstraint(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	liker := createTestUser(t, db, "liker")
	recipe := createTestRecipe(t, db, owner, "Soup")

	first := models.Like{UserID: liker.ID, RecipeID: recipe.ID}
	require.NoError(t, db.Create(&first).Error)

	// A second insert for the same pair must be rejected at the constraint
	// level, never silently succeed.
	second := models.Like{UserID: liker.ID, RecipeID: recipe.ID}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestToggleLikeIndependentUsers(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	a := createTestUser(t, db, "usera")
	b := createTestUser(t, db, "userb")
	recipe := createTestRecipe(t, db, owner, "Stew")

	likes := NewLikeService(db)
	ctx := context.Background()

	_, err := likes.ToggleLike(ctx, a.ID, recipe.ID)
	require.NoError(t, err)
	_, err = likes.ToggleLike(ctx, b.ID, recipe.ID)
	require.NoError(t, err)

	count, err := likes.LikeCount(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Unliking by one user leaves the other's like intact.
	_, err = likes.ToggleLike(ctx, a.ID, recipe.ID)
	require.NoError(t, err)

	count, err = likes.LikeCount(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	has, err := likes.HasLiked(ctx, b.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, has)
}
