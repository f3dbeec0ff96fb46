package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileAggregatesLikes(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	fan1 := createTestUser(t, db, "fan1")
	fan2 := createTestUser(t, db, "fan2")

	first := createTestRecipe(t, db, owner, "First")
	second := createTestRecipe(t, db, owner, "Second")

	likes := NewLikeService(db)
	ctx := context.Background()
	_, err := likes.ToggleLike(ctx, fan1.ID, first.ID)
	require.NoError(t, err)
	_, err = likes.ToggleLike(ctx, fan2.ID, first.ID)
	require.NoError(t, err)
	_, err = likes.ToggleLike(ctx, fan1.ID, second.ID)
	require.NoError(t, err)

	recipes := NewRecipeService(db)
	profiles := NewProfileService(db, recipes)

	profile, err := profiles.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", profile.Username)
	assert.Len(t, profile.Recipes, 2)
	assert.Equal(t, int64(3), profile.TotalLikesReceived)

	// A user with no recipes has received no likes.
	fanProfile, err := profiles.GetProfile(ctx, fan1.ID)
	require.NoError(t, err)
	assert.Empty(t, fanProfile.Recipes)
	assert.Equal(t, int64(0), fanProfile.TotalLikesReceived)
}

func TestTotalLikesReceivedExcludesDeletedRecipes(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	fan := createTestUser(t, db, "fan")

	kept := createTestRecipe(t, db, owner, "Kept")
	doomed := createTestRecipe(t, db, owner, "Doomed")

	likes := NewLikeService(db)
	recipes := NewRecipeService(db)
	ctx := context.Background()

	_, err := likes.ToggleLike(ctx, fan.ID, kept.ID)
	require.NoError(t, err)
	_, err = likes.ToggleLike(ctx, fan.ID, doomed.ID)
	require.NoError(t, err)

	require.NoError(t, recipes.DeleteRecipe(ctx, owner.ID, doomed.ID))

	profiles := NewProfileService(db, recipes)
	total, err := profiles.TotalLikesReceived(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
