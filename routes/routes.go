package routes

import (
	"clothing-store/config"
	"clothing-store/controllers"
	middlewares "clothing-store/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	corsConfig := cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	// Credentials cannot be combined with a wildcard origin.
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	admin := r.Group("/api/v1/admin")
	if cfg.RequireAuth {
		admin.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	}

	// Every record route answers to both addressing conventions:
	// /{collection}/{id} and /{collection}?id={id}.
	admin.GET("/brands", controllers.GetBrands)
	admin.GET("/brands/:id", controllers.GetBrandByID)
	admin.POST("/brands", controllers.CreateBrand)
	admin.PUT("/brands", controllers.UpdateBrand)
	admin.PUT("/brands/:id", controllers.UpdateBrand)
	admin.DELETE("/brands", controllers.DeleteBrand)
	admin.DELETE("/brands/:id", controllers.DeleteBrand)

	admin.GET("/clothing", controllers.GetClothing)
	admin.GET("/clothing/:id", controllers.GetClothingItemByID)
	admin.POST("/clothing", controllers.CreateClothingItem)
	admin.PUT("/clothing", controllers.UpdateClothingItem)
	admin.PUT("/clothing/:id", controllers.UpdateClothingItem)
	admin.PUT("/clothing/:id/stock", controllers.UpdateStock)
	admin.DELETE("/clothing", controllers.DeleteClothingItem)
	admin.DELETE("/clothing/:id", controllers.DeleteClothingItem)

	admin.GET("/users", controllers.GetUsers)
	admin.GET("/users/:id", controllers.GetUserByID)
	admin.POST("/users", controllers.CreateUser)
	admin.PUT("/users", controllers.UpdateUser)
	admin.PUT("/users/:id", controllers.UpdateUser)
	admin.DELETE("/users", controllers.DeleteUser)
	admin.DELETE("/users/:id", controllers.DeleteUser)

	admin.GET("/sales", controllers.GetSales)
	admin.GET("/sales/:id", controllers.GetSaleByID)
	admin.POST("/sales", controllers.CreateSale)
	admin.PUT("/sales", controllers.UpdateSale)
	admin.PUT("/sales/:id", controllers.UpdateSale)
	admin.DELETE("/sales", controllers.DeleteSale)
	admin.DELETE("/sales/:id", controllers.DeleteSale)

	admin.GET("/reports", controllers.GetReports)
	admin.GET("/reports/brands", controllers.GetBrandsWithSales)
	admin.GET("/reports/items", controllers.GetItemsSold)
	admin.GET("/reports/top5", controllers.GetTop5Brands)
	admin.GET("/reports/sales", controllers.GetSalesByDate)
}
