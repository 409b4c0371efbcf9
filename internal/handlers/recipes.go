package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/larder-dev/larder/db"
	"github.com/larder-dev/larder/internal/logger"
	"github.com/larder-dev/larder/internal/services"
	"github.com/larder-dev/larder/internal/types"
	"github.com/larder-dev/larder/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateRecipeRequest struct {
	Name                 string    `json:"name" binding:"required"`
	Description          string    `json:"description"`
	Instructions         string    `json:"instructions"`
	PrepTime             int       `json:"prep_time" binding:"gte=0"`
	CookTime             int       `json:"cook_time" binding:"gte=0"`
	Servings             int       `json:"servings" binding:"required,gt=0"`
	IngredientIDs        []uint    `json:"ingredient_ids"`
	IngredientQuantities []float64 `json:"ingredient_quantities"`
	IngredientUnits      []string  `json:"ingredient_units"`
}

func CreateRecipe(ctx *gin.Context) {
	var body CreateRecipeRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, err := services.CreateRecipe(db.DB.WithContext(ctx.Request.Context()), userID, services.RecipeParams{
		Name:                 body.Name,
		Description:          body.Description,
		Instructions:         body.Instructions,
		PrepTime:             body.PrepTime,
		CookTime:             body.CookTime,
		Servings:             body.Servings,
		IngredientIDs:        body.IngredientIDs,
		IngredientQuantities: body.IngredientQuantities,
		IngredientUnits:      body.IngredientUnits,
	})

	if err != nil {
		logger.Error("Failed to create recipe", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponse(*recipe))
}

func ListRecipes(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	skip := utils.QueryInt(ctx, "skip", 0)
	limit := utils.QueryInt(ctx, "limit", services.DefaultListLimit)

	recipes, err := services.ListRecipes(db.DB.WithContext(ctx.Request.Context()), userID, skip, limit)

	if err != nil {
		logger.Error("Failed to list recipes", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponses(recipes))
}

func GetRecommendations(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipes, err := services.Recommendations(db.DB.WithContext(ctx.Request.Context()), userID)

	if err != nil {
		logger.Error("Failed to compute recommendations", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recommendations"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponses(recipes))
}

func GetRandomRecipe(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, err := services.RandomRecommendation(db.DB.WithContext(ctx.Request.Context()), userID)

	if err != nil {
		if errors.Is(err, services.ErrNoRecommendations) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No recipes available with current ingredients"})
		} else {
			logger.Error("Failed to pick random recipe", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponse(*recipe))
}

func GetRecipe(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipeID, err := utils.GetRecipeID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.GetRecipe(db.DB.WithContext(ctx.Request.Context()), userID, recipeID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		} else {
			logger.Error("Failed to retrieve recipe", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponse(*recipe))
}

func DeleteRecipe(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipeID, err := utils.GetRecipeID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.DeleteRecipe(db.DB.WithContext(ctx.Request.Context()), userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		} else {
			logger.Error("Failed to delete recipe", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
