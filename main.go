package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ludoteca/ludoteca-backend/src/db"
	"github.com/ludoteca/ludoteca-backend/src/middleware"
	"github.com/ludoteca/ludoteca-backend/src/models"
	"github.com/ludoteca/ludoteca-backend/src/routes"
	"github.com/ludoteca/ludoteca-backend/src/seed"
	"github.com/ludoteca/ludoteca-backend/src/services"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.CategoryModel{},
		&models.GameModel{},
		&models.CopyModel{},
		&models.UserModel{},
		&models.LoanModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT secret setup
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	middleware.SetSecretKey(secret)

	if os.Getenv("SEED_DB") == "true" {
		seed.Seed(db)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	categoryService := services.NewCategoryService(db)
	gameService := services.NewGameService(db)
	userService := services.NewUserService(db)
	loanService := services.NewLoanService(db, gameService)
	exportService := services.NewExportService(gameService, categoryService, loanService)

	// Routes setup
	routes.SetupCategoryRoutes(router, categoryService)
	routes.SetupGameRoutes(router, gameService)
	routes.SetupUserRoutes(router, userService)
	routes.SetupLoanRoutes(router, loanService)
	routes.SetupExportRoutes(router, exportService)

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
