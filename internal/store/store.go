// Package store is the persistence gateway of the catalog. Every inbound
// request works against its own unit of work, which maps onto a single
// database transaction.
package store

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"gamestore/backend/internal/models"

	"gorm.io/gorm"
)

// MaxID is the largest id the SERIAL key columns can hold. Lookups past it
// can never match a row.
const MaxID = math.MaxInt32

// Gateway is a request-scoped unit of work over the catalog tables.
type Gateway interface {
	// FindGameByID returns nil and no error when no game has the given id.
	FindGameByID(id uint) (*models.Game, error)
	ListGamesWithGenre() ([]models.GameListing, error)
	ListGenres() ([]models.Genre, error)
	// InsertGame assigns the new id to g.
	InsertGame(g *models.Game) error
	// OverwriteGame copies every mutable field of newValues onto existing.
	OverwriteGame(existing *models.Game, newValues models.Game) error
	// DeleteGamesMatching removes the game with the given id without loading it
	// and reports how many rows were removed.
	DeleteGamesMatching(id uint) (int64, error)
	Commit() error
	// Rollback abandons the unit of work. It is a no-op once Commit succeeded.
	Rollback() error
}

// Store opens units of work.
type Store interface {
	Begin(ctx context.Context) (Gateway, error)
}

// GormStore is the Store backed by a gorm connection pool.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Begin starts a transaction bound to ctx. Cancelling ctx before Commit
// aborts the transaction.
func (s *GormStore) Begin(ctx context.Context) (Gateway, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, wrap("begin unit of work", tx.Error)
	}
	return &unitOfWork{tx: tx}, nil
}

type unitOfWork struct {
	tx   *gorm.DB
	done bool
}

// gameRow is the shape of one row of the games/genres join.
type gameRow struct {
	models.Game `gorm:"embedded"`
	GenreName   string
}

func (u *unitOfWork) FindGameByID(id uint) (*models.Game, error) {
	var game models.Game
	err := u.tx.First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("find game", err)
	}
	return &game, nil
}

func (u *unitOfWork) ListGamesWithGenre() ([]models.GameListing, error) {
	var rows []gameRow
	err := u.tx.Model(&models.Game{}).
		Select("games.id, games.name, games.genre_id, games.price, games.release_date, genres.name AS genre_name").
		Joins("JOIN genres ON genres.id = games.genre_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("list games", err)
	}

	listings := make([]models.GameListing, 0, len(rows))
	for _, r := range rows {
		listings = append(listings, models.GameListing{
			Game:  r.Game,
			Genre: models.Genre{ID: r.Game.GenreID, Name: r.GenreName},
		})
	}
	return listings, nil
}

func (u *unitOfWork) ListGenres() ([]models.Genre, error) {
	var genres []models.Genre
	if err := u.tx.Find(&genres).Error; err != nil {
		return nil, wrap("list genres", err)
	}
	return genres, nil
}

func (u *unitOfWork) InsertGame(g *models.Game) error {
	return wrap("insert game", u.tx.Create(g).Error)
}

func (u *unitOfWork) OverwriteGame(existing *models.Game, newValues models.Game) error {
	existing.Name = newValues.Name
	existing.GenreID = newValues.GenreID
	existing.Price = newValues.Price
	existing.ReleaseDate = newValues.ReleaseDate

	// Select("*") writes zero values too, so a free game really stores 0.
	err := u.tx.Model(existing).Select("*").Omit("id").Updates(existing).Error
	return wrap("overwrite game", err)
}

func (u *unitOfWork) DeleteGamesMatching(id uint) (int64, error) {
	result := u.tx.Where("id = ?", id).Delete(&models.Game{})
	if result.Error != nil {
		return 0, wrap("delete game", result.Error)
	}
	return result.RowsAffected, nil
}

func (u *unitOfWork) Commit() error {
	if err := u.tx.Commit().Error; err != nil {
		return wrap("commit", err)
	}
	u.done = true
	return nil
}

func (u *unitOfWork) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
		return wrap("rollback", err)
	}
	return nil
}
