package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetItemID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "item_id")
}

func GetRecipeID(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "recipe_id")
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	idStr := ctx.Param(name)

	if idStr == "" {
		return 0, errors.New("missing " + name)
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("invalid " + name)
	}

	return uint(id), nil
}

// QueryInt reads an integer query parameter, falling back when absent
// or malformed.
func QueryInt(ctx *gin.Context, name string, fallback int) int {
	valueStr := ctx.Query(name)

	if valueStr == "" {
		return fallback
	}

	value, err := strconv.Atoi(valueStr)

	if err != nil {
		return fallback
	}

	return value
}
