package dto

import (
	"time"

	"gamestore/backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ToEntity builds a new, not yet persisted game from a creation payload.
func ToEntity(p CreateGamePayload) models.Game {
	return models.Game{
		Name:        p.Name,
		GenreID:     p.GenreID,
		Price:       toStorePrice(p.Price),
		ReleaseDate: toStoreDate(p.ReleaseDate),
	}
}

// ToUpdatedEntity builds the replacement values for the game with the given id.
func ToUpdatedEntity(p UpdateGamePayload, id uint) models.Game {
	return models.Game{
		ID:          id,
		Name:        p.Name,
		GenreID:     p.GenreID,
		Price:       toStorePrice(p.Price),
		ReleaseDate: toStoreDate(p.ReleaseDate),
	}
}

// toStorePrice treats a nil price as zero. Validated payloads always carry one.
func toStorePrice(p *float64) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*p)
}

// ToSummaryView expects the listing's genre to be already joined in.
func ToSummaryView(l models.GameListing) GameSummaryView {
	return GameSummaryView{
		ID:          l.Game.ID,
		Name:        l.Game.Name,
		Genre:       l.Genre.Name,
		Price:       l.Game.Price.InexactFloat64(),
		ReleaseDate: fromStoreDate(l.Game.ReleaseDate),
	}
}

func ToDetailView(g models.Game) GameDetailView {
	return GameDetailView{
		ID:          g.ID,
		Name:        g.Name,
		GenreID:     g.GenreID,
		Price:       g.Price.InexactFloat64(),
		ReleaseDate: fromStoreDate(g.ReleaseDate),
	}
}

func ToGenreView(g models.Genre) GenreView {
	return GenreView{
		ID:   g.ID,
		Name: g.Name,
	}
}

func toStoreDate(d Date) datatypes.Date {
	t := time.Time(d)
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// fromStoreDate keeps the calendar day as stored, whatever location the
// driver attached to it.
func fromStoreDate(d datatypes.Date) Date {
	t := time.Time(d)
	return NewDate(t.Year(), t.Month(), t.Day())
}
