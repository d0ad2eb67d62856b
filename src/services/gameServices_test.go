package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludoteca/ludoteca-backend/src/dtos"
	"github.com/ludoteca/ludoteca-backend/src/models"
)

func TestRegisterWithCopiesCreatesDistinctSKUs(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)

	game, err := games.RegisterWithCopies(&dtos.RegisterGameDTO{
		Title:     "Pandemic",
		SKUPrefix: "PAN",
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, game.Stock)

	var copies []models.CopyModel
	require.NoError(t, db.Where("game_id = ?", game.Id).Order("sku ASC").Find(&copies).Error)
	require.Len(t, copies, 3)

	seen := map[string]bool{}
	for _, c := range copies {
		assert.Equal(t, models.CopyAvailable, c.Status)
		assert.False(t, seen[c.SKU], "duplicate SKU %s", c.SKU)
		seen[c.SKU] = true
	}
	assert.Equal(t, []string{"PAN-1", "PAN-2", "PAN-3"},
		[]string{copies[0].SKU, copies[1].SKU, copies[2].SKU})
}

func TestRegisterWithZeroQuantity(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)

	game, err := games.RegisterWithCopies(&dtos.RegisterGameDTO{
		Title:    "Preorder title",
		Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, game.Stock)

	var copyCount int64
	require.NoError(t, db.Model(&models.CopyModel{}).Where("game_id = ?", game.Id).Count(&copyCount).Error)
	assert.Equal(t, int64(0), copyCount)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)

	_, err := games.RegisterWithCopies(&dtos.RegisterGameDTO{SKUPrefix: "X", Quantity: 1})
	assert.ErrorIs(t, err, ErrMissingTitle)

	_, err = games.RegisterWithCopies(&dtos.RegisterGameDTO{Title: "X", Quantity: -1})
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = games.RegisterWithCopies(&dtos.RegisterGameDTO{Title: "X", Quantity: 2})
	assert.ErrorIs(t, err, ErrMissingPrefix)
}

func TestGetGamesFilters(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)

	category := models.CategoryModel{Name: "Estrategia"}
	require.NoError(t, db.Create(&category).Error)

	_, err := games.RegisterWithCopies(&dtos.RegisterGameDTO{
		Title:      "Terraforming Mars",
		CategoryId: &category.Id,
		Complexity: models.ComplexityHigh,
		Tags:       []string{"engine-building", "space"},
		SKUPrefix:  "TFM",
		Quantity:   1,
	})
	require.NoError(t, err)

	_, err = games.RegisterWithCopies(&dtos.RegisterGameDTO{
		Title:      "Uno",
		Complexity: models.ComplexityLow,
		SKUPrefix:  "UNO",
		Quantity:   0,
	})
	require.NoError(t, err)

	all, err := games.GetGames("", "", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Search matches title substring
	found, err := games.GetGames("terraform", "", false)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Terraforming Mars", found[0].Title)
	if assert.NotNil(t, found[0].CategoryName) {
		assert.Equal(t, "Estrategia", *found[0].CategoryName)
	}
	assert.Equal(t, 1, found[0].AvailableCopies)

	// Search matches tags too
	found, err = games.GetGames("space", "", false)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Terraforming Mars", found[0].Title)

	// Complexity filter
	found, err = games.GetGames("", models.ComplexityLow, false)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Uno", found[0].Title)

	// onlyAvailable hides the zero-stock title
	found, err = games.GetGames("", "", true)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Terraforming Mars", found[0].Title)
}

func TestSoftDeleteHidesGameButKeepsCopiesAndLoans(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)
	loans := NewLoanService(db, games)

	game := registerTestGame(t, games, "Codenames", "COD", 2)
	user := createTestUser(t, db, "usera")

	loan, err := loans.Checkout(game.Id, user.Id, 7)
	require.NoError(t, err)

	require.NoError(t, games.SoftDeleteGame(game.Id))

	listed, err := games.GetGames("", "", false)
	require.NoError(t, err)
	assert.Len(t, listed, 0)

	var copyCount int64
	require.NoError(t, db.Model(&models.CopyModel{}).Where("game_id = ?", game.Id).Count(&copyCount).Error)
	assert.Equal(t, int64(2), copyCount)

	var persisted models.LoanModel
	require.NoError(t, db.First(&persisted, loan.Id).Error)
	assert.Equal(t, models.LoanActive, persisted.Status)
}

func TestSoftDeleteUnknownGame(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)

	err := games.SoftDeleteGame(4242)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestUpdateGameRawStockOverwrite(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)

	game := registerTestGame(t, games, "Onitama", "ONI", 2)

	// The quantity edit here is a raw overwrite, not reconciled against
	// the copy count.
	updated, err := games.UpdateGame(game.Id, &dtos.UpdateGameDTO{
		Title:      "Onitama",
		Complexity: models.ComplexityLow,
		Stock:      10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Stock)

	var copyCount int64
	require.NoError(t, db.Model(&models.CopyModel{}).Where("game_id = ?", game.Id).Count(&copyCount).Error)
	assert.Equal(t, int64(2), copyCount)
}

func TestGameListCacheInvalidation(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)

	registerTestGame(t, games, "First", "FIR", 1)

	listed, err := games.GetGames("", "", false)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// A second registration must not be hidden by the cached listing
	registerTestGame(t, games, "Second", "SEC", 1)

	listed, err = games.GetGames("", "", false)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestGetCopiesOrderedBySKU(t *testing.T) {
	db := setupTestDB(t)
	games := NewGameService(db)

	game := registerTestGame(t, games, "Decrypto", "DEC", 2)

	copies, err := games.GetCopies(game.Id)
	require.NoError(t, err)
	require.Len(t, copies, 2)
	assert.Equal(t, "DEC-1", copies[0].SKU)
	assert.Equal(t, "DEC-2", copies[1].SKU)
}
