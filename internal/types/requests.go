package types

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=6"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title        string `json:"title" binding:"required,max=250"`
	Category     string `json:"category" binding:"omitempty,oneof=BR LU DI DE SN OT"`
	DietType     string `json:"diet_type" binding:"omitempty,oneof=VEG NON VGN"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
}

// UpdateRecipeRequest represents the request body for updating a recipe.
// Empty fields keep their previous values.
type UpdateRecipeRequest struct {
	Title        string `json:"title" binding:"omitempty,max=250"`
	Category     string `json:"category" binding:"omitempty,oneof=BR LU DI DE SN OT"`
	DietType     string `json:"diet_type" binding:"omitempty,oneof=VEG NON VGN"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// ListRecipesQuery captures the supported query parameters on the list endpoint
type ListRecipesQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=BR LU DI DE SN OT"`
	DietType string `form:"diet_type" binding:"omitempty,oneof=VEG NON VGN"`
	Search   string `form:"search"`
	Ordering string `form:"ordering" binding:"omitempty,oneof=like_count_ann -like_count_ann created_at -created_at"`
}
