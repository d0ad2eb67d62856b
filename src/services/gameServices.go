package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/ludoteca/ludoteca-backend/src/dtos"
	"github.com/ludoteca/ludoteca-backend/src/models"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrMissingTitle   = errors.New("a title is required")
	ErrMissingPrefix  = errors.New("a SKU prefix is required to create copies")
	ErrNegativeAmount = errors.New("quantity cannot be negative")
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type GameService struct {
	db    *gorm.DB
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

func NewGameService(db *gorm.DB) *GameService {
	service := &GameService{
		db:    db,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *GameService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *GameService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *GameService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, found := s.cache[key]
	if !found || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Data, true
}

func (s *GameService) invalidateCache(pattern string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.cache {
		if strings.Contains(key, pattern) {
			delete(s.cache, key)
		}
	}
}

// InvalidateGameCache drops every cached catalog listing. Called by the
// loan workflow whenever availability changes.
func (s *GameService) InvalidateGameCache(gameID int) {
	s.invalidateCache("games")
	s.invalidateCache(fmt.Sprintf("game_%d", gameID))
}

// GetGames retrieves active games with the joined category name and an
// availableCopies count computed from the copies table.
func (s *GameService) GetGames(search, complexity string, onlyAvailable bool) ([]dtos.GameSummaryDTO, error) {
	cacheKey := fmt.Sprintf("games_%s_%s_%t", search, complexity, onlyAvailable)
	if cached, found := s.getCache(cacheKey); found {
		return cached.([]dtos.GameSummaryDTO), nil
	}

	type summaryRow struct {
		Id              int       `gorm:"column:id"`
		Title           string    `gorm:"column:title"`
		CategoryName    *string   `gorm:"column:category_name"`
		Description     *string   `gorm:"column:description"`
		MinPlayers      int       `gorm:"column:min_players"`
		MaxPlayers      int       `gorm:"column:max_players"`
		RecommendedAge  int       `gorm:"column:recommended_age"`
		DurationMinutes int       `gorm:"column:duration_minutes"`
		Complexity      string    `gorm:"column:complexity"`
		Tags            string    `gorm:"column:tags"`
		ImageURL        *string   `gorm:"column:image_url"`
		Stock           int       `gorm:"column:stock"`
		AvailableCopies int       `gorm:"column:available_copies"`
		CreatedAt       time.Time `gorm:"column:created_at"`
	}

	query := s.db.Table("game_models AS g").
		Select(`g.id,
			g.title,
			c.name AS category_name,
			g.description,
			g.min_players,
			g.max_players,
			g.recommended_age,
			g.duration_minutes,
			g.complexity,
			g.tags,
			g.image_url,
			g.stock,
			g.created_at,
			(SELECT COUNT(*) FROM copy_models e
			 WHERE e.game_id = g.id AND e.status = ?) AS available_copies`,
			models.CopyAvailable).
		Joins("LEFT JOIN category_models c ON c.id = g.category_id").
		Where("g.active = ?", true)

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(g.title) LIKE ? OR LOWER(g.tags) LIKE ?", like, like)
	}
	if complexity != "" && complexity != "All" {
		query = query.Where("g.complexity = ?", complexity)
	}
	if onlyAvailable {
		query = query.Where("g.stock > 0")
	}

	var rows []summaryRow
	if err := query.Order("g.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]dtos.GameSummaryDTO, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dtos.GameSummaryDTO{
			Id:              row.Id,
			Title:           row.Title,
			CategoryName:    row.CategoryName,
			Description:     row.Description,
			MinPlayers:      row.MinPlayers,
			MaxPlayers:      row.MaxPlayers,
			RecommendedAge:  row.RecommendedAge,
			DurationMinutes: row.DurationMinutes,
			Complexity:      row.Complexity,
			Tags:            splitTags(row.Tags),
			ImageURL:        row.ImageURL,
			Stock:           row.Stock,
			AvailableCopies: row.AvailableCopies,
			CreatedAt:       row.CreatedAt,
		})
	}

	s.setCache(cacheKey, summaries, 5*time.Minute)

	return summaries, nil
}

// GetGameByID retrieves a single Game record with its category preloaded
func (s *GameService) GetGameByID(id int) (*models.GameModel, error) {
	var game models.GameModel
	result := s.db.Preload("Category").First(&game, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, result.Error
	}
	return &game, nil
}

// RegisterWithCopies creates a Game together with its initial physical
// inventory: one copy per unit of quantity, each with a derived SKU
// "PREFIX-n". All inserts commit together or not at all.
func (s *GameService) RegisterWithCopies(dto *dtos.RegisterGameDTO) (*models.GameModel, error) {
	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrMissingTitle
	}
	if dto.Quantity < 0 {
		return nil, ErrNegativeAmount
	}
	if dto.Quantity > 0 && strings.TrimSpace(dto.SKUPrefix) == "" {
		return nil, ErrMissingPrefix
	}

	complexity := dto.Complexity
	if complexity == "" {
		complexity = models.ComplexityMedium
	}

	game := models.GameModel{
		Title:           strings.TrimSpace(dto.Title),
		CategoryId:      dto.CategoryId,
		Description:     dto.Description,
		MinPlayers:      dto.MinPlayers,
		MaxPlayers:      dto.MaxPlayers,
		RecommendedAge:  dto.RecommendedAge,
		DurationMinutes: dto.DurationMinutes,
		Complexity:      complexity,
		Tags:            joinTags(dto.Tags),
		ImageURL:        dto.ImageURL,
		Active:          true,
		Stock:           dto.Quantity,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&game).Error; err != nil {
			return err
		}

		for i := 1; i <= dto.Quantity; i++ {
			copyRow := models.CopyModel{
				GameId: game.Id,
				SKU:    fmt.Sprintf("%s-%d", strings.TrimSpace(dto.SKUPrefix), i),
				Status: models.CopyAvailable,
			}
			if err := tx.Create(&copyRow).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.InvalidateGameCache(game.Id)

	return &game, nil
}

// UpdateGame overwrites the game's editable fields. The stock value is a
// raw overwrite here, not reconciled against the copy count.
func (s *GameService) UpdateGame(id int, dto *dtos.UpdateGameDTO) (*models.GameModel, error) {
	var game models.GameModel
	if err := s.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"title":            dto.Title,
		"category_id":      dto.CategoryId,
		"description":      dto.Description,
		"min_players":      dto.MinPlayers,
		"max_players":      dto.MaxPlayers,
		"recommended_age":  dto.RecommendedAge,
		"duration_minutes": dto.DurationMinutes,
		"complexity":       dto.Complexity,
		"tags":             joinTags(dto.Tags),
		"image_url":        dto.ImageURL,
		"stock":            dto.Stock,
	}
	if err := s.db.Model(&game).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.InvalidateGameCache(id)

	if err := s.db.Preload("Category").First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// SoftDeleteGame archives a game. Its copies and any existing loans are
// left untouched.
func (s *GameService) SoftDeleteGame(id int) error {
	result := s.db.Model(&models.GameModel{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGameNotFound
	}

	s.InvalidateGameCache(id)

	return nil
}

// GetCopies lists the physical copies registered for a game
func (s *GameService) GetCopies(gameID int) ([]models.CopyModel, error) {
	var copies []models.CopyModel
	result := s.db.Where("game_id = ?", gameID).Order("sku ASC").Find(&copies)
	if result.Error != nil {
		return nil, result.Error
	}
	return copies, nil
}

func splitTags(tags string) []string {
	if strings.TrimSpace(tags) == "" {
		return []string{}
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func joinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, ",")
}
