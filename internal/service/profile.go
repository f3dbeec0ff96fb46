package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platehub/backend/internal/models"
	"github.com/platehub/backend/internal/types"
)

// ProfileService assembles the authenticated caller's profile view
type ProfileService struct {
	db      *gorm.DB
	recipes *RecipeService
}

func NewProfileService(db *gorm.DB, recipes *RecipeService) *ProfileService {
	return &ProfileService{
		db:      db,
		recipes: recipes,
	}
}

// GetProfile returns the user's own record, their recipes and the total
// number of likes received across all of them.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileView, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	views, err := s.recipes.ListRecipesByOwner(ctx, userID, &userID)
	if err != nil {
		return nil, err
	}

	total, err := s.TotalLikesReceived(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &types.ProfileView{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Recipes:            views,
		TotalLikesReceived: total,
	}, nil
}

// TotalLikesReceived counts like rows against all recipes owned by the user
func (s *ProfileService) TotalLikesReceived(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Joins("JOIN recipes ON recipes.id = likes.recipe_id").
		Where("recipes.user_id = ? AND recipes.deleted_at IS NULL", userID).
		Count(&total).Error
	return total, err
}
