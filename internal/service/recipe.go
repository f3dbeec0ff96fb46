package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platehub/backend/internal/models"
	"github.com/platehub/backend/internal/types"
)

// likeCountExpr computes the live like count for each recipe at read time, so
// the annotation is always consistent with the current like rows.
const likeCountExpr = "(SELECT COUNT(*) FROM likes WHERE likes.recipe_id = recipes.id)"

const userLikedExpr = "(SELECT COUNT(*) FROM likes WHERE likes.recipe_id = recipes.id AND likes.user_id = ?)"

// annotatedRecipe is the scan target for recipe rows joined with their owner
// and the computed like columns.
type annotatedRecipe struct {
	models.Recipe
	OwnerUsername string `gorm:"column:owner_username"`
	LikeCountAnn  int64  `gorm:"column:like_count_ann"`
	UserLiked     int64  `gorm:"column:user_liked"`
}

// RecipeService handles recipe CRUD and the like-count-aware listing
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// annotated builds the base query selecting recipes with owner username,
// like_count_ann and user_liked columns. requester may be nil (anonymous).
func (s *RecipeService) annotated(ctx context.Context, requester *uuid.UUID) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Joins("JOIN users ON users.id = recipes.user_id")
	if requester != nil {
		return query.Select(
			"recipes.*, users.username AS owner_username, "+likeCountExpr+" AS like_count_ann, "+userLikedExpr+" AS user_liked",
			*requester,
		)
	}
	return query.Select(
		"recipes.*, users.username AS owner_username, " + likeCountExpr + " AS like_count_ann, 0 AS user_liked",
	)
}

// ListRecipes returns recipe views matching the query, annotated with like
// counts. Default ordering is most-liked first.
func (s *RecipeService) ListRecipes(ctx context.Context, q *types.ListRecipesQuery, requester *uuid.UUID) ([]types.RecipeView, error) {
	query := s.annotated(ctx, requester)

	if q.Category != "" {
		query = query.Where("recipes.category = ?", q.Category)
	}
	if q.DietType != "" {
		query = query.Where("recipes.diet_type = ?", q.DietType)
	}
	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where(
			"LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ? OR LOWER(recipes.ingredients) LIKE ?",
			like, like, like,
		)
	}

	query = query.Order(orderClause(q.Ordering))

	var rows []annotatedRecipe
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]types.RecipeView, len(rows))
	for i, row := range rows {
		views[i] = row.toView()
	}
	return views, nil
}

// ListRecipesByOwner returns the views of all recipes owned by ownerID
func (s *RecipeService) ListRecipesByOwner(ctx context.Context, ownerID uuid.UUID, requester *uuid.UUID) ([]types.RecipeView, error) {
	var rows []annotatedRecipe
	err := s.annotated(ctx, requester).
		Where("recipes.user_id = ?", ownerID).
		Order("recipes.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]types.RecipeView, len(rows))
	for i, row := range rows {
		views[i] = row.toView()
	}
	return views, nil
}

// GetRecipeView returns a single recipe view or ErrNotFound
func (s *RecipeService) GetRecipeView(ctx context.Context, id uuid.UUID, requester *uuid.UUID) (*types.RecipeView, error) {
	var row annotatedRecipe
	err := s.annotated(ctx, requester).Where("recipes.id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := row.toView()
	return &view, nil
}

// CreateRecipe creates a recipe owned by ownerID
func (s *RecipeService) CreateRecipe(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest) (*types.RecipeView, error) {
	recipe := models.Recipe{
		UserID:       ownerID,
		Title:        req.Title,
		Category:     req.Category,
		DietType:     req.DietType,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}

	return s.GetRecipeView(ctx, recipe.ID, &ownerID)
}

// UpdateRecipe applies the request to a recipe the caller owns. Empty request
// fields keep their previous values. Returns ErrForbidden for non-owners.
func (s *RecipeService) UpdateRecipe(ctx context.Context, callerID, recipeID uuid.UUID, req *types.UpdateRecipeRequest) (*types.RecipeView, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if recipe.UserID != callerID {
		return nil, ErrForbidden
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Category != "" {
		recipe.Category = req.Category
	}
	if req.DietType != "" {
		recipe.DietType = req.DietType
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.Ingredients != "" {
		recipe.Ingredients = req.Ingredients
	}
	if req.Instructions != "" {
		recipe.Instructions = req.Instructions
	}

	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}

	return s.GetRecipeView(ctx, recipe.ID, &callerID)
}

// DeleteRecipe removes a recipe the caller owns, cascading its likes
func (s *RecipeService) DeleteRecipe(ctx context.Context, callerID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if recipe.UserID != callerID {
		return ErrForbidden
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

// SetImageURL records an uploaded image URL on a recipe the caller owns
func (s *RecipeService) SetImageURL(ctx context.Context, callerID, recipeID uuid.UUID, url string) (*types.RecipeView, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if recipe.UserID != callerID {
		return nil, ErrForbidden
	}

	if err := s.db.WithContext(ctx).Model(&recipe).Update("image_url", url).Error; err != nil {
		return nil, err
	}

	return s.GetRecipeView(ctx, recipe.ID, &callerID)
}

// orderClause maps the ordering query param to a SQL order expression.
// A leading '-' means descending, mirroring the list endpoint's contract.
func orderClause(ordering string) string {
	switch ordering {
	case "like_count_ann":
		return "like_count_ann ASC"
	case "created_at":
		return "recipes.created_at ASC"
	case "-created_at":
		return "recipes.created_at DESC"
	case "-like_count_ann", "":
		return "like_count_ann DESC"
	default:
		return "like_count_ann DESC"
	}
}

func (r annotatedRecipe) toView() types.RecipeView {
	return types.RecipeView{
		ID:           r.ID,
		Owner:        r.OwnerUsername,
		Title:        r.Title,
		Category:     r.Category,
		CategoryName: models.CategoryLabel(r.Category),
		DietType:     r.DietType,
		DietTypeName: models.DietTypeLabel(r.DietType),
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		LikeCount:    r.LikeCountAnn,
		UserHasLiked: r.UserLiked > 0,
	}
}
