package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platehub/backend/internal/models"
	"github.com/platehub/backend/internal/types"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")
	ctx := context.Background()

	user, token, err := auth.Register(ctx, &types.RegisterRequest{
		Username:  "alice",
		Password:  "password123",
		Email:     "alice@example.com",
		FirstName: "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "password123", user.PasswordHash, "password must be stored hashed")

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	_, loginToken, err := auth.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)

	_, _, err = auth.Login(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := auth.Register(ctx, &types.RegisterRequest{
		Username: "alice",
		Password: "password123",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, &types.RegisterRequest{
		Username: "alice",
		Password: "password456",
		Email:    "alice2@example.com",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "failed registration must not create a row")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := auth.Register(ctx, &types.RegisterRequest{
		Username: "alice",
		Password: "password123",
		Email:    "shared@example.com",
	})
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, &types.RegisterRequest{
		Username: "bob",
		Password: "password123",
		Email:    "shared@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")

	_, token, err := auth.Register(context.Background(), &types.RegisterRequest{
		Username: "alice",
		Password: "password123",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	_, err = auth.ValidateToken(token + "x")
	assert.Error(t, err)

	other := NewAuthService(db, "different-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
