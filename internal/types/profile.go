package types

import (
	"github.com/google/uuid"
)

// ProfileView is the authenticated caller's own profile, including owned
// recipes and the total likes received across them.
type ProfileView struct {
	ID                 uuid.UUID    `json:"id"`
	Username           string       `json:"username"`
	Email              string       `json:"email"`
	FirstName          string       `json:"first_name"`
	LastName           string       `json:"last_name"`
	Recipes            []RecipeView `json:"recipes"`
	TotalLikesReceived int64        `json:"total_likes_received"`
}

// AuthResponse is returned from register and login
type AuthResponse struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}
