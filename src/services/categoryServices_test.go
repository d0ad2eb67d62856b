package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludoteca/ludoteca-backend/src/models"
)

func TestGetOrCreateCategoryUpsertsByName(t *testing.T) {
	db := setupTestDB(t)
	categories := NewCategoryService(db)

	first, err := categories.GetOrCreateCategory("Estrategia")
	require.NoError(t, err)

	// Same name, different case and padding, resolves to the same row
	second, err := categories.GetOrCreateCategory("  estrategia ")
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	var count int64
	require.NoError(t, db.Model(&models.CategoryModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateCategoryRejectsEmptyName(t *testing.T) {
	db := setupTestDB(t)
	categories := NewCategoryService(db)

	_, err := categories.GetOrCreateCategory("   ")
	assert.Error(t, err)
}

func TestGetAllCategoriesOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	categories := NewCategoryService(db)

	for _, name := range []string{"Rol", "Estrategia", "Party"} {
		_, err := categories.GetOrCreateCategory(name)
		require.NoError(t, err)
	}

	all, err := categories.GetAllCategories()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Estrategia", all[0].Name)
	assert.Equal(t, "Party", all[1].Name)
	assert.Equal(t, "Rol", all[2].Name)
}
