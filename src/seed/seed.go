package seed

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ludoteca/ludoteca-backend/src/models"
)

// Seed is idempotent: it creates the bootstrap admin and the base
// categories only when they are missing.
func Seed(db *gorm.DB) {
	// Admin user
	var user models.UserModel
	result := db.Where("username = ?", "admin").First(&user)
	if result.Error == nil {
		log.Println("User 'admin' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username:     "admin",
			Email:        "admin@ludoteca.local",
			PasswordHash: string(hashedPassword),
			Role:         models.RoleAdmin,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create admin user: %v\n", err)
		} else {
			log.Println("User 'admin' created")
		}
	}

	// Base categories
	baseCategories := []string{"Estrategia", "Familiar", "Party", "Cooperativo", "Rol"}
	createdCount := 0
	for _, name := range baseCategories {
		var existing models.CategoryModel
		checkResult := db.Where("LOWER(name) = LOWER(?)", name).First(&existing)
		if checkResult.Error == nil {
			continue
		}
		category := models.CategoryModel{Name: name}
		if err := db.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %q: %v\n", name, err)
		} else {
			createdCount++
		}
	}
	if createdCount > 0 {
		log.Printf("Created %d base categories\n", createdCount)
	} else {
		log.Println("All base categories already exist")
	}
}
