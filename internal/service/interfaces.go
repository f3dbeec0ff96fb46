package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/platehub/backend/internal/models"
	"github.com/platehub/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	GenerateToken(userID uuid.UUID, username string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// ILikeService defines the interface for like toggle operations
type ILikeService interface {
	ToggleLike(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	LikeCount(ctx context.Context, recipeID uuid.UUID) (int64, error)
	HasLiked(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, q *types.ListRecipesQuery, requester *uuid.UUID) ([]types.RecipeView, error)
	ListRecipesByOwner(ctx context.Context, ownerID uuid.UUID, requester *uuid.UUID) ([]types.RecipeView, error)
	GetRecipeView(ctx context.Context, id uuid.UUID, requester *uuid.UUID) (*types.RecipeView, error)
	CreateRecipe(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest) (*types.RecipeView, error)
	UpdateRecipe(ctx context.Context, callerID, recipeID uuid.UUID, req *types.UpdateRecipeRequest) (*types.RecipeView, error)
	DeleteRecipe(ctx context.Context, callerID, recipeID uuid.UUID) error
	SetImageURL(ctx context.Context, callerID, recipeID uuid.UUID, url string) (*types.RecipeView, error)
}

// IProfileService defines the interface for profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileView, error)
	TotalLikesReceived(ctx context.Context, userID uuid.UUID) (int64, error)
}

// IImageService defines the interface for image storage
type IImageService interface {
	UploadRecipeImage(ctx context.Context, recipeID uuid.UUID, imageData []byte, contentType string) (string, error)
}

var (
	_ IAuthService    = (*AuthService)(nil)
	_ ILikeService    = (*LikeService)(nil)
	_ IRecipeService  = (*RecipeService)(nil)
	_ IProfileService = (*ProfileService)(nil)
	_ IImageService   = (*ImageService)(nil)
)
