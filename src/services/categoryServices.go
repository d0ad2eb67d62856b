package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ludoteca/ludoteca-backend/src/models"
)

type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// GetAllCategories retrieves all Category records ordered by name
func (s *CategoryService) GetAllCategories() ([]models.CategoryModel, error) {
	var categories []models.CategoryModel
	result := s.db.Order("name ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// GetOrCreateCategory upserts a category by its (trimmed) name. Category
// names come from free text in the client, so lookups are case-insensitive.
func (s *CategoryService) GetOrCreateCategory(name string) (*models.CategoryModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name cannot be empty")
	}

	var category models.CategoryModel
	err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = models.CategoryModel{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
