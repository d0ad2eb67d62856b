package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ludoteca/ludoteca-backend/src/controllers"
	"github.com/ludoteca/ludoteca-backend/src/middleware"
	"github.com/ludoteca/ludoteca-backend/src/services"
)

func SetupCategoryRoutes(router *gin.Engine, service *services.CategoryService) {

	categoryController := controllers.NewCategoryController(service)

	categories := router.Group("/categories")
	categories.Use(middleware.AuthMiddleware())
	{
		categories.GET("/", categoryController.GetCategories)
	}

	admin := router.Group("/categories")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.POST("/", categoryController.CreateCategory)
	}
}
