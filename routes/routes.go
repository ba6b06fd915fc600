package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Mamora-sema/Food-diary/controllers"
	"github.com/Mamora-sema/Food-diary/logger"
	"github.com/Mamora-sema/Food-diary/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger.L()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.POST("/setup", controllers.Setup)
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.PUT("/password", controllers.ChangePassword)
			user.DELETE("", controllers.DeleteAccount)
		}

		products := api.Group("/products")
		{
			products.GET("", controllers.ListProducts)
			products.POST("", controllers.CreateProduct)
			products.GET("/:id", controllers.GetProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		recipes := api.Group("/recipes")
		{
			recipes.GET("", controllers.ListRecipes)
			recipes.POST("", controllers.CreateRecipe)
			recipes.GET("/:id", controllers.GetRecipe)
			recipes.PUT("/:id", controllers.UpdateRecipe)
			recipes.DELETE("/:id", controllers.DeleteRecipe)
		}

		entries := api.Group("/entries")
		{
			entries.GET("", controllers.ListMealEntries)
			entries.POST("", controllers.AddMealEntry)
			entries.DELETE("/:id", controllers.DeleteMealEntry)
		}

		api.GET("/summary", controllers.GetDailySummary)

		goals := api.Group("/goals")
		{
			goals.GET("", controllers.GetGoals)
			goals.PUT("", controllers.UpdateGoals)
			goals.GET("/recommend", controllers.RecommendGoals)
		}

		api.GET("/progress/history", controllers.GetProgressHistory)

		api.GET("/sync", controllers.GetSync)
		api.POST("/sync", controllers.PostSync)
	}

	return r
}
