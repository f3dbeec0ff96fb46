package types

import (
	"time"

	"github.com/google/uuid"
)

// RecipeView is the transport representation of a recipe, including the
// computed like_count and user_has_liked fields.
type RecipeView struct {
	ID           uuid.UUID `json:"id"`
	Owner        string    `json:"owner"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	CategoryName string    `json:"category_name"`
	DietType     string    `json:"diet_type"`
	DietTypeName string    `json:"diet_type_name"`
	Description  string    `json:"description"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LikeCount    int64     `json:"like_count"`
	UserHasLiked bool      `json:"user_has_liked"`
}
