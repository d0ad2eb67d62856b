package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ludoteca/ludoteca-backend/src/controllers"
	"github.com/ludoteca/ludoteca-backend/src/middleware"
	"github.com/ludoteca/ludoteca-backend/src/services"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {

	userController := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", userController.Login)
	router.POST("/users", userController.Register)

	// Protected routes
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/search", userController.Search)
	}

	// Admin routes
	admin := router.Group("/users")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.GET("/", userController.GetAllUsers)
	}
}
