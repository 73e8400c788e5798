package handler_test

import (
	"context"

	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"

	"github.com/stretchr/testify/mock"
)

// --- MOCK STORE ---

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Begin(ctx context.Context) (store.Gateway, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(store.Gateway), args.Error(1)
}

// --- MOCK GATEWAY ---

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) FindGameByID(id uint) (*models.Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGateway) ListGamesWithGenre() ([]models.GameListing, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameListing), args.Error(1)
}

func (m *MockGateway) ListGenres() ([]models.Genre, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGateway) InsertGame(g *models.Game) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockGateway) OverwriteGame(existing *models.Game, newValues models.Game) error {
	args := m.Called(existing, newValues)
	return args.Error(0)
}

func (m *MockGateway) DeleteGamesMatching(id uint) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGateway) Commit() error {
	return m.Called().Error(0)
}

func (m *MockGateway) Rollback() error {
	return m.Called().Error(0)
}
