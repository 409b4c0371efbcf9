package types

import (
	"time"

	"github.com/larder-dev/larder/internal/models"
)

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type ItemResponse struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Barcode        *string    `json:"barcode"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	ExpirationDate *time.Time `json:"expiration_date"`
	CreatedAt      time.Time  `json:"created_at"`
	OwnerID        uint       `json:"owner_id"`
}

type RecipeResponse struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Instructions string         `json:"instructions"`
	PrepTime     int            `json:"prep_time"`
	CookTime     int            `json:"cook_time"`
	Servings     int            `json:"servings"`
	CreatedAt    time.Time      `json:"created_at"`
	OwnerID      uint           `json:"owner_id"`
	Ingredients  []ItemResponse `json:"ingredients"`
}

func NewItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Barcode:        item.Barcode,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		ExpirationDate: item.ExpirationDate,
		CreatedAt:      item.CreatedAt,
		OwnerID:        item.OwnerID,
	}
}

func NewItemResponses(items []models.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))

	for _, item := range items {
		responses = append(responses, NewItemResponse(item))
	}

	return responses
}

func NewRecipeResponse(recipe models.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:           recipe.ID,
		Name:         recipe.Name,
		Description:  recipe.Description,
		Instructions: recipe.Instructions,
		PrepTime:     recipe.PrepTime,
		CookTime:     recipe.CookTime,
		Servings:     recipe.Servings,
		CreatedAt:    recipe.CreatedAt,
		OwnerID:      recipe.OwnerID,
		Ingredients:  NewItemResponses(recipe.Ingredients),
	}
}

func NewRecipeResponses(recipes []models.Recipe) []RecipeResponse {
	responses := make([]RecipeResponse, 0, len(recipes))

	for _, recipe := range recipes {
		responses = append(responses, NewRecipeResponse(recipe))
	}

	return responses
}
