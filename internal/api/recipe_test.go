package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platehub/backend/internal/models"
)

func TestLikeToggleScenario(t *testing.T) {
	engine, _ := setupTestRouter(t)

	// User A creates recipe R.
	tokenA := registerTestUser(t, engine, "usera")
	recipeID := createTestRecipe(t, engine, tokenA, "Shared Dish")

	// User B toggles like on R: liked.
	tokenB := registerTestUser(t, engine, "userb")
	w := doJSON(t, engine, "POST", "/api/v1/recipes/"+recipeID+"/like", nil, tokenB)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipes/"+recipeID, nil, tokenB)
	require.Equal(t, http.StatusOK, w.Code)
	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, float64(1), view["like_count"])
	assert.Equal(t, true, view["user_has_liked"])

	// Toggle again: unliked.
	w = doJSON(t, engine, "POST", "/api/v1/recipes/"+recipeID+"/like", nil, tokenB)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipes/"+recipeID, nil, tokenB)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, float64(0), view["like_count"])
	assert.Equal(t, false, view["user_has_liked"])
}

func TestToggleLikeRequiresAuth(t *testing.T) {
	engine, db := setupTestRouter(t)

	token := registerTestUser(t, engine, "owner")
	recipeID := createTestRecipe(t, engine, token, "Protected")

	w := doJSON(t, engine, "POST", "/api/v1/recipes/"+recipeID+"/like", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "unauthenticated toggle must not mutate")
}

func TestToggleLikeMissingRecipe(t *testing.T) {
	engine, _ := setupTestRouter(t)

	token := registerTestUser(t, engine, "user")
	w := doJSON(t, engine, "POST", "/api/v1/recipes/"+uuid.NewString()+"/like", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	engine, _ := setupTestRouter(t)

	body := map[string]string{
		"title":        "Anonymous Dish",
		"ingredients":  "x",
		"instructions": "y",
	}
	w := doJSON(t, engine, "POST", "/api/v1/recipes", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRecipeValidation(t *testing.T) {
	engine, _ := setupTestRouter(t)
	token := registerTestUser(t, engine, "chef")

	// Missing required fields.
	w := doJSON(t, engine, "POST", "/api/v1/recipes", map[string]string{"title": "No Body"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown category code.
	body := map[string]string{
		"title":        "Bad Category",
		"category":     "XX",
		"ingredients":  "x",
		"instructions": "y",
	}
	w = doJSON(t, engine, "POST", "/api/v1/recipes", body, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRecipeOwnerOnly(t *testing.T) {
	engine, _ := setupTestRouter(t)

	ownerToken := registerTestUser(t, engine, "owner")
	otherToken := registerTestUser(t, engine, "other")
	recipeID := createTestRecipe(t, engine, ownerToken, "Original")

	w := doJSON(t, engine, "PUT", "/api/v1/recipes/"+recipeID, map[string]string{"title": "Hijacked"}, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unchanged after the forbidden attempt.
	w = doJSON(t, engine, "GET", "/api/v1/recipes/"+recipeID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Original", view["title"])

	w = doJSON(t, engine, "PUT", "/api/v1/recipes/"+recipeID, map[string]string{"title": "Renamed"}, ownerToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Renamed", view["title"])

	// PATCH routes to the same handler.
	w = doJSON(t, engine, "PATCH", "/api/v1/recipes/"+recipeID, map[string]string{"diet_type": "VGN"}, ownerToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "VGN", view["diet_type"])
	assert.Equal(t, "Renamed", view["title"])
}

func TestDeleteRecipe(t *testing.T) {
	engine, db := setupTestRouter(t)

	ownerToken := registerTestUser(t, engine, "owner")
	otherToken := registerTestUser(t, engine, "other")
	likerToken := registerTestUser(t, engine, "liker")
	recipeID := createTestRecipe(t, engine, ownerToken, "Doomed")

	w := doJSON(t, engine, "POST", "/api/v1/recipes/"+recipeID+"/like", nil, likerToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, "DELETE", "/api/v1/recipes/"+recipeID, nil, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, "DELETE", "/api/v1/recipes/"+recipeID, nil, ownerToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/recipes/"+recipeID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var likeRows int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likeRows).Error)
	assert.Equal(t, int64(0), likeRows, "likes must be cascade-deleted with the recipe")
}

func TestListRecipes(t *testing.T) {
	engine, _ := setupTestRouter(t)

	chefToken := registerTestUser(t, engine, "chef")
	fanToken := registerTestUser(t, engine, "fan")

	plainID := createTestRecipe(t, engine, chefToken, "Plain Rice")
	popularID := createTestRecipe(t, engine, chefToken, "Chocolate Cake")
	_ = plainID

	w := doJSON(t, engine, "POST", "/api/v1/recipes/"+popularID+"/like", nil, fanToken)
	require.Equal(t, http.StatusCreated, w.Code)

	// Anonymous list, default ordering: most liked first.
	w = doJSON(t, engine, "GET", "/api/v1/recipes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	recipes := resp["recipes"]
	require.Len(t, recipes, 2)
	assert.Equal(t, "Chocolate Cake", recipes[0]["title"])
	assert.Equal(t, false, recipes[0]["user_has_liked"])

	// Authenticated list carries the caller's like state.
	w = doJSON(t, engine, "GET", "/api/v1/recipes", nil, fanToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["recipes"][0]["user_has_liked"])

	// Bad ordering value is rejected.
	w = doJSON(t, engine, "GET", "/api/v1/recipes?ordering=bogus", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Search narrows the result.
	w = doJSON(t, engine, "GET", "/api/v1/recipes?search=chocolate", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["recipes"], 1)
}

func TestUploadImageUnavailable(t *testing.T) {
	engine, _ := setupTestRouter(t)

	token := registerTestUser(t, engine, "owner")
	recipeID := createTestRecipe(t, engine, token, "No Image")

	req := doJSON(t, engine, "POST", "/api/v1/recipes/"+recipeID+"/image", nil, token)
	assert.Equal(t, http.StatusServiceUnavailable, req.Code)
}
