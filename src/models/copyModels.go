package models

// Availability states for a physical copy.
const (
	CopyAvailable = "Available"
	CopyLoaned    = "Loaned"
)

// CopyModel is one physical copy of a game. Copies are created in a batch
// when the game is registered and are never deleted, only toggled between
// Available and Loaned.
type CopyModel struct {
	Id     int        `json:"id" gorm:"primaryKey;autoIncrement"`
	GameId int        `json:"gameId" gorm:"column:game_id;index;not null"`
	Game   *GameModel `json:"game,omitempty" gorm:"foreignKey:GameId;references:Id"`
	SKU    string     `json:"sku" gorm:"column:sku;type:varchar(120);uniqueIndex;not null"`
	Status string     `json:"status" gorm:"type:varchar(20);default:'Available';not null"`
}
