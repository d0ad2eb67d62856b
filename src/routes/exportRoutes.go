package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ludoteca/ludoteca-backend/src/controllers"
	"github.com/ludoteca/ludoteca-backend/src/middleware"
	"github.com/ludoteca/ludoteca-backend/src/services"
)

func SetupExportRoutes(router *gin.Engine, service *services.ExportService) {

	exportController := controllers.NewExportController(service)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.GET("/loans/history/export", exportController.ExportLoanHistory)
		admin.GET("/catalog/export", exportController.ExportCatalog)
		admin.POST("/games/import", exportController.ImportGames)
	}
}
