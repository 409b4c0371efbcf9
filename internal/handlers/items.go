package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/larder-dev/larder/db"
	"github.com/larder-dev/larder/internal/logger"
	"github.com/larder-dev/larder/internal/services"
	"github.com/larder-dev/larder/internal/types"
	"github.com/larder-dev/larder/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateItemRequest struct {
	Name           string     `json:"name" binding:"required"`
	Barcode        *string    `json:"barcode"`
	Quantity       float64    `json:"quantity" binding:"gte=0"`
	Unit           string     `json:"unit" binding:"required"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

func (r CreateItemRequest) patch() services.ItemPatch {
	return services.ItemPatch{
		Name:           r.Name,
		Barcode:        r.Barcode,
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		ExpirationDate: r.ExpirationDate,
	}
}

func CreateItem(ctx *gin.Context) {
	var body CreateItemRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	item, err := services.CreateItem(db.DB.WithContext(ctx.Request.Context()), userID, body.patch())

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Barcode already registered"})
			return
		}
		logger.Error("Failed to create item", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewItemResponse(*item))
}

func ListItems(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	skip := utils.QueryInt(ctx, "skip", 0)
	limit := utils.QueryInt(ctx, "limit", services.DefaultListLimit)

	items, err := services.ListItems(db.DB.WithContext(ctx.Request.Context()), userID, skip, limit)

	if err != nil {
		logger.Error("Failed to list items", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewItemResponses(items))
}

func ListExpiringItems(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	days := utils.QueryInt(ctx, "days", services.DefaultExpiringWindowDays)

	items, err := services.ExpiringItems(db.DB.WithContext(ctx.Request.Context()), userID, days)

	if err != nil {
		logger.Error("Failed to list expiring items", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewItemResponses(items))
}

func GetItem(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemID, err := utils.GetItemID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.GetItem(db.DB.WithContext(ctx.Request.Context()), userID, itemID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to retrieve item", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewItemResponse(*item))
}

func UpdateItem(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemID, err := utils.GetItemID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body CreateItemRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item, err := services.UpdateItem(db.DB.WithContext(ctx.Request.Context()), userID, itemID, body.patch())

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Barcode already registered"})
		default:
			logger.Error("Failed to update item", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewItemResponse(*item))
}

func DeleteItem(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemID, err := utils.GetItemID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.DeleteItem(db.DB.WithContext(ctx.Request.Context()), userID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to delete item", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
