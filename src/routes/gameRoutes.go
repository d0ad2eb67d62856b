package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ludoteca/ludoteca-backend/src/controllers"
	"github.com/ludoteca/ludoteca-backend/src/middleware"
	"github.com/ludoteca/ludoteca-backend/src/services"
)

func SetupGameRoutes(router *gin.Engine, service *services.GameService) {

	gameController := controllers.NewGameController(service)

	// Protected routes
	games := router.Group("/games")
	games.Use(middleware.AuthMiddleware())
	{
		games.GET("/", gameController.GetGames)
		games.GET("/:id/image", gameController.GetGameImage)
		games.GET("/:id/copies", gameController.GetGameCopies)
	}

	// Admin-only catalog mutations
	admin := router.Group("/games")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.POST("/full", gameController.RegisterFull)
		admin.PUT("/:id", gameController.UpdateGame)
		admin.DELETE("/:id", gameController.DeleteGame)
	}
}
