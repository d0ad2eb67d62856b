package models

import "time"

// Complexity tiers for a game.
const (
	ComplexityLow    = "Low"
	ComplexityMedium = "Medium"
	ComplexityHigh   = "High"
)

type GameModel struct {
	Id              int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string         `json:"title" gorm:"type:varchar(150);not null"`
	CategoryId      *int           `json:"categoryId" gorm:"column:category_id"`
	Category        *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryId;references:Id"`
	Description     *string        `json:"description" gorm:"type:text"`
	MinPlayers      int            `json:"minPlayers" gorm:"default:1"`
	MaxPlayers      int            `json:"maxPlayers" gorm:"default:1"`
	RecommendedAge  int            `json:"recommendedAge"`
	DurationMinutes int            `json:"durationMinutes"`
	Complexity      string         `json:"complexity" gorm:"type:varchar(20);default:'Medium';not null"`
	// Tags is stored as a comma-joined list; the API exposes it as []string.
	Tags     string  `json:"-" gorm:"type:text"`
	ImageURL *string `json:"imageUrl" gorm:"column:image_url;type:text"`
	Active   bool    `json:"active" gorm:"default:true;not null"`
	// Stock is the visual count of available copies, maintained by the
	// loan workflow. Not a live aggregate.
	Stock     int       `json:"stock" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}
