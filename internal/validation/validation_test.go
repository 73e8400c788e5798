package validation

import (
	"strings"
	"testing"
	"time"

	"gamestore/backend/internal/dto"

	"github.com/stretchr/testify/assert"
)

func price(f float64) *float64 {
	return &f
}

func validCreate() dto.CreateGamePayload {
	return dto.CreateGamePayload{
		Name:        "Foo",
		GenreID:     1,
		Price:       price(9.99),
		ReleaseDate: dto.NewDate(2020, time.January, 1),
	}
}

func TestCheck_ValidPayload(t *testing.T) {
	assert.Nil(t, New().Check(validCreate()))
}

func TestCheck_FreeGameIsAllowed(t *testing.T) {
	p := validCreate()
	p.Price = price(0)
	assert.Nil(t, New().Check(p))
}

func TestCheck_PriceScale(t *testing.T) {
	v := New()
	for _, f := range []float64{0, 1, 9.9, 9.99, 59.99, 100000} {
		p := validCreate()
		p.Price = price(f)
		assert.Nil(t, v.Check(p), "price %v", f)
	}
	for _, f := range []float64{9.999, 0.001, 19.995} {
		p := validCreate()
		p.Price = price(f)
		errs := v.Check(p)
		if assert.Len(t, errs, 1, "price %v", f) {
			assert.Equal(t, "price", errs[0].Field)
			assert.Equal(t, "must have at most 2 decimal places", errs[0].Message)
		}
	}
}

func TestCheck_ReportsJSONFieldNames(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *dto.CreateGamePayload)
		field   string
		message string
	}{
		{"missing name", func(p *dto.CreateGamePayload) { p.Name = "" }, "name", "is required"},
		{"long name", func(p *dto.CreateGamePayload) { p.Name = strings.Repeat("x", 51) }, "name", "must be at most 50 characters long"},
		{"missing genre", func(p *dto.CreateGamePayload) { p.GenreID = 0 }, "genreId", "is required"},
		{"genre out of range", func(p *dto.CreateGamePayload) { p.GenreID = 1 << 31 }, "genreId", "must be less than or equal to 2147483647"},
		{"missing price", func(p *dto.CreateGamePayload) { p.Price = nil }, "price", "is required"},
		{"negative price", func(p *dto.CreateGamePayload) { p.Price = price(-1) }, "price", "must be greater than or equal to 0"},
		{"price too precise", func(p *dto.CreateGamePayload) { p.Price = price(9.999) }, "price", "must have at most 2 decimal places"},
		{"missing release date", func(p *dto.CreateGamePayload) { p.ReleaseDate = dto.Date{} }, "releaseDate", "is required"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validCreate()
			tt.mutate(&p)

			errs := v.Check(p)

			if assert.Len(t, errs, 1) {
				assert.Equal(t, tt.field, errs[0].Field)
				assert.Equal(t, tt.message, errs[0].Message)
			}
		})
	}
}

func TestCheck_UpdatePayloadCollectsEveryError(t *testing.T) {
	errs := New().Check(dto.UpdateGamePayload{Price: price(-5)})

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"name", "genreId", "price", "releaseDate"}, fields)
}

func TestCheck_UpdatePayloadRequiresPrice(t *testing.T) {
	errs := New().Check(dto.UpdateGamePayload{
		Name:        "Foo",
		GenreID:     1,
		ReleaseDate: dto.NewDate(2020, time.January, 1),
	})

	if assert.Len(t, errs, 1) {
		assert.Equal(t, FieldError{Field: "price", Message: "is required"}, errs[0])
	}
}
