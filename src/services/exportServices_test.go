package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"github.com/ludoteca/ludoteca-backend/src/models"
)

func TestExportLoanHistoryWorkbook(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)
	categories := NewCategoryService(db)
	loans := NewLoanService(db, games)
	exports := NewExportService(games, categories, loans)

	game := registerTestGame(t, games, "Catan", "CAT", 1)
	user := createTestUser(t, db, "usera")
	loan, err := loans.Checkout(game.Id, user.Id, 7)
	require.NoError(t, err)
	_, err = loans.Return(loan.Id)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, exports.ExportLoanHistory(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Loan history")
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one completed loan
	assert.Equal(t, "Username", rows[0][1])
	assert.Equal(t, "usera", rows[1][1])
	assert.Equal(t, "Catan", rows[1][2])
}

func TestExportCatalogWorkbook(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)
	categories := NewCategoryService(db)
	loans := NewLoanService(db, games)
	exports := NewExportService(games, categories, loans)

	registerTestGame(t, games, "Azul", "AZU", 2)

	var buf bytes.Buffer
	require.NoError(t, exports.ExportCatalog(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Catalog")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Azul", rows[1][1])
	assert.Equal(t, "2", rows[1][8]) // stock column
}

func TestImportGamesFromExcel(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)
	categories := NewCategoryService(db)
	loans := NewLoanService(db, games)
	exports := NewExportService(games, categories, loans)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"Title", "Category", "Description", "MinPlayers", "MaxPlayers", "RecommendedAge", "DurationMinutes", "Complexity", "Tags", "SKUPrefix", "Quantity"}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	good := []interface{}{"7 Wonders", "Estrategia", "Draft civilizations", 3, 7, 10, 30, "Medium", "drafting;civilization", "7WO", 2}
	for i, v := range good {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	// Bad row: copies requested without a SKU prefix
	bad := []interface{}{"Broken", "Party", "", 2, 4, 8, 20, "Low", "", "", 3}
	for i, v := range bad {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	result, err := exports.ImportGamesFromExcel(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Len(t, result.Errors, 1)

	listed, err := games.GetGames("", "", false)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "7 Wonders", listed[0].Title)
	assert.Equal(t, 2, listed[0].AvailableCopies)
	if assert.NotNil(t, listed[0].CategoryName) {
		assert.Equal(t, "Estrategia", *listed[0].CategoryName)
	}

	// Category was upserted by the import
	var category models.CategoryModel
	require.NoError(t, db.Where("name = ?", "Estrategia").First(&category).Error)
}
