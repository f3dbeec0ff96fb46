package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platehub/backend/internal/models"
)

// LikeService implements the like toggle and its read-side aggregations.
// A (user, recipe) pair is in one of two states, liked or not liked, and each
// ToggleLike call flips it.
type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// ToggleLike flips the like state for (userID, recipeID). It returns
// liked=true when a like was created and liked=false when one was removed.
// Returns ErrNotFound when the recipe does not exist and ErrLikeConflict when
// a concurrent toggle won the insert race.
func (s *LikeService) ToggleLike(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	var like models.Like
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&like).Error
	if err == nil {
		// Already liked: unlike.
		if err := s.db.WithContext(ctx).Delete(&like).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like = models.Like{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, ErrLikeConflict
		}
		return false, err
	}
	return true, nil
}

// LikeCount returns the number of likes a recipe currently has
func (s *LikeService) LikeCount(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	return count, err
}

// HasLiked reports whether the user has a like row for the recipe
func (s *LikeService) HasLiked(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}
