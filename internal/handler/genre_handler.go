package handler

import (
	"net/http"
	"time"

	"gamestore/backend/internal/dto"
	"gamestore/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// GenreHandler serves the read-only /genres resource. Genres are seeded by
// migrations.
type GenreHandler struct {
	store   store.Store
	timeout time.Duration
}

func NewGenreHandler(s store.Store, timeout time.Duration) *GenreHandler {
	return &GenreHandler{store: s, timeout: timeout}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

// List godoc
// @Summary      Get all genres
// @Description  Retrieves a list of all available genres.
// @Tags         genres
// @Produce      json
// @Success      200  {array}   dto.GenreView
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /genres [get]
func (h *GenreHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	gw, err := h.store.Begin(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer gw.Rollback()

	genres, err := gw.ListGenres()
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]dto.GenreView, 0, len(genres))
	for _, g := range genres {
		response = append(response, dto.ToGenreView(g))
	}
	c.JSON(http.StatusOK, response)
}
