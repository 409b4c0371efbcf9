package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/larder-dev/larder/internal/handlers"
	"github.com/larder-dev/larder/internal/middleware"
	"github.com/larder-dev/larder/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.RegisterUser)
		auth.POST("/login", handlers.LoginUser)
		auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		auth.POST("/logout", handlers.LogoutUser)
	}

	items := r.Group("/items", middleware.AuthMiddleware())
	{
		items.POST("", handlers.CreateItem)
		items.GET("", handlers.ListItems)

		// Static sub-paths registered before :item_id so "expiring"
		// is never parsed as an id.
		items.GET("/expiring", handlers.ListExpiringItems)

		items.GET("/:item_id", handlers.GetItem)
		items.PUT("/:item_id", handlers.UpdateItem)
		items.DELETE("/:item_id", handlers.DeleteItem)
	}

	recipes := r.Group("/recipes", middleware.AuthMiddleware())
	{
		recipes.POST("", handlers.CreateRecipe)
		recipes.GET("", handlers.ListRecipes)

		recipes.GET("/recommendations", handlers.GetRecommendations)
		recipes.GET("/random", handlers.GetRandomRecipe)

		recipes.GET("/:recipe_id", handlers.GetRecipe)
		recipes.DELETE("/:recipe_id", handlers.DeleteRecipe)
	}

	return r
}
