package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ludoteca/ludoteca-backend/src/controllers"
	"github.com/ludoteca/ludoteca-backend/src/middleware"
	"github.com/ludoteca/ludoteca-backend/src/services"
)

func SetupLoanRoutes(router *gin.Engine, service *services.LoanService) {

	loanController := controllers.NewLoanController(service)

	// Members can see their own history. Registered under /loans because
	// /users/:id would clash with the static /users/search route in gin's
	// route tree.
	router.GET("/loans/user/:id", middleware.AuthMiddleware(), loanController.GetUserLoans)

	// Admin-only loan desk
	loans := router.Group("/loans")
	loans.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		loans.POST("/", loanController.Checkout)
		loans.PUT("/:id/return", loanController.Return)
		loans.GET("/active", loanController.GetActiveLoans)
		loans.GET("/history", loanController.GetLoanHistory)
	}
}
