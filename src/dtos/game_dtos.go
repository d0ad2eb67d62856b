package dtos

import "time"

// RegisterGameDTO is the payload for POST /games/full: the game attributes
// plus the initial physical inventory to create alongside it.
type RegisterGameDTO struct {
	Title           string   `json:"title"`
	CategoryId      *int     `json:"categoryId"`
	Description     *string  `json:"description"`
	MinPlayers      int      `json:"minPlayers"`
	MaxPlayers      int      `json:"maxPlayers"`
	RecommendedAge  int      `json:"recommendedAge"`
	DurationMinutes int      `json:"durationMinutes"`
	Complexity      string   `json:"complexity"`
	Tags            []string `json:"tags"`
	ImageURL        *string  `json:"imageUrl"`
	SKUPrefix       string   `json:"skuPrefix"`
	Quantity        int      `json:"quantity"`
}

// UpdateGameDTO overwrites the game's fields, stock included.
type UpdateGameDTO struct {
	Title           string   `json:"title"`
	CategoryId      *int     `json:"categoryId"`
	Description     *string  `json:"description"`
	MinPlayers      int      `json:"minPlayers"`
	MaxPlayers      int      `json:"maxPlayers"`
	RecommendedAge  int      `json:"recommendedAge"`
	DurationMinutes int      `json:"durationMinutes"`
	Complexity      string   `json:"complexity"`
	Tags            []string `json:"tags"`
	ImageURL        *string  `json:"imageUrl"`
	Stock           int      `json:"stock"`
}

// GameSummaryDTO is a catalog row with the joined category name and the
// availability count computed from the copies table.
type GameSummaryDTO struct {
	Id              int       `json:"id"`
	Title           string    `json:"title"`
	CategoryName    *string   `json:"categoryName,omitempty"`
	Description     *string   `json:"description,omitempty"`
	MinPlayers      int       `json:"minPlayers"`
	MaxPlayers      int       `json:"maxPlayers"`
	RecommendedAge  int       `json:"recommendedAge"`
	DurationMinutes int       `json:"durationMinutes"`
	Complexity      string    `json:"complexity"`
	Tags            []string  `json:"tags"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	Stock           int       `json:"stock"`
	AvailableCopies int       `json:"availableCopies"`
	CreatedAt       time.Time `json:"createdAt"`
}
