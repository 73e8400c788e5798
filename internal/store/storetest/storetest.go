// Package storetest provides an in-memory SQLite catalog for tests.
package storetest

import (
	"testing"

	"gamestore/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// schema mirrors the postgres migrations in SQLite syntax. SQLite ignores the
// NUMERIC(10,2) scale, so prices keep every digit instead of rounding to
// cents, and its INTEGER keys are 64-bit where SERIAL stops at
// math.MaxInt32. Both bounds are enforced before the store is reached, by
// the price scale rule in validation and by store.MaxID, and are tested there.
var schema = []string{
	`CREATE TABLE genres (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(50) NOT NULL UNIQUE
	)`,
	`CREATE TABLE games (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(50) NOT NULL,
		genre_id INTEGER NOT NULL REFERENCES genres(id),
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		release_date DATE NOT NULL
	)`,
}

// NewDB opens a private in-memory database with the catalog schema and
// foreign keys enforced. It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

// SeedGenres inserts the given genres and returns them with ids assigned.
func SeedGenres(t testing.TB, db *gorm.DB, names ...string) []models.Genre {
	t.Helper()

	genres := make([]models.Genre, 0, len(names))
	for _, name := range names {
		g := models.Genre{Name: name}
		if err := db.Create(&g).Error; err != nil {
			t.Fatalf("seed genre %q: %v", name, err)
		}
		genres = append(genres, g)
	}
	return genres
}

// CountGames returns the number of rows in the games table.
func CountGames(t testing.TB, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Game{}).Count(&n).Error; err != nil {
		t.Fatalf("count games: %v", err)
	}
	return n
}
