package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Game represents a catalog entry. The genre is referenced by id only; the
// genre name is resolved by an explicit join when listing.
type Game struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:50;not null"`
	GenreID     uint            `gorm:"not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ReleaseDate datatypes.Date  `gorm:"not null"`
}

// GameListing is a game paired with the genre its GenreID points at.
type GameListing struct {
	Game  Game
	Genre Genre
}
