package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"gamestore/backend/internal/dto"
	"gamestore/backend/internal/store"
	"gamestore/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// GameHandler serves the /games resource.
type GameHandler struct {
	store    store.Store
	validate *validation.Validator
	timeout  time.Duration
}

func NewGameHandler(s store.Store, v *validation.Validator, timeout time.Duration) *GameHandler {
	return &GameHandler{store: s, validate: v, timeout: timeout}
}

func (h *GameHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary      List games
// @Description  Retrieves every game with its genre name.
// @Tags         games
// @Produce      json
// @Success      200  {array}   dto.GameSummaryView
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /games [get]
func (h *GameHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	gw, err := h.store.Begin(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer gw.Rollback()

	listings, err := gw.ListGamesWithGenre()
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]dto.GameSummaryView, 0, len(listings))
	for _, l := range listings {
		response = append(response, dto.ToSummaryView(l))
	}
	c.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary      Get a single game by ID
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  dto.GameDetailView
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  "Game not found"
// @Router       /games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	id, known, ok := parseID(c)
	if !ok {
		return
	}
	if !known {
		c.Status(http.StatusNotFound)
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	gw, err := h.store.Begin(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer gw.Rollback()

	game, err := gw.FindGameByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if game == nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.ToDetailView(*game))
}

// Create godoc
// @Summary      Create a new game
// @Description  Creates a game and returns it with the id assigned by the store.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body dto.CreateGamePayload true "Game Info"
// @Success      201  {object}  dto.GameDetailView
// @Header       201  {string}  Location  "/games/{id}"
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      409  {object}  dto.ErrorResponse "Unknown genre"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /games [post]
func (h *GameHandler) Create(c *gin.Context) {
	var payload dto.CreateGamePayload
	if !bindPayload(c, h.validate, &payload) {
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	gw, err := h.store.Begin(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer gw.Rollback()

	game := dto.ToEntity(payload)
	if err := gw.InsertGame(&game); err != nil {
		abortWithError(c, err)
		return
	}
	if err := gw.Commit(); err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Location", gameLocation(c, game.ID))
	c.JSON(http.StatusCreated, dto.ToDetailView(game))
}

// Update godoc
// @Summary      Replace a game
// @Description  Overwrites every field of an existing game. All fields must be supplied.
// @Tags         games
// @Accept       json
// @Param        id    path      int                    true  "Game ID"
// @Param        input body      dto.UpdateGamePayload  true  "New Game Info"
// @Success      204   "No Content"
// @Failure      400   {object}  ValidationErrorResponse
// @Failure      404   "Game not found"
// @Failure      409   {object}  dto.ErrorResponse "Unknown genre"
// @Router       /games/{id} [put]
func (h *GameHandler) Update(c *gin.Context) {
	id, known, ok := parseID(c)
	if !ok {
		return
	}

	var payload dto.UpdateGamePayload
	if !bindPayload(c, h.validate, &payload) {
		return
	}
	if !known {
		c.Status(http.StatusNotFound)
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	gw, err := h.store.Begin(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer gw.Rollback()

	existing, err := gw.FindGameByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if existing == nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := gw.OverwriteGame(existing, dto.ToUpdatedEntity(payload, id)); err != nil {
		abortWithError(c, err)
		return
	}
	if err := gw.Commit(); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary      Delete a game
// @Description  Deletes a game. Deleting an unknown id also succeeds.
// @Tags         games
// @Param        id path int true "Game ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.ErrorResponse
// @Router       /games/{id} [delete]
func (h *GameHandler) Delete(c *gin.Context) {
	id, known, ok := parseID(c)
	if !ok {
		return
	}
	if !known {
		c.Status(http.StatusNoContent)
		return
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	gw, err := h.store.Begin(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer gw.Rollback()

	if _, err := gw.DeleteGamesMatching(id); err != nil {
		abortWithError(c, err)
		return
	}
	if err := gw.Commit(); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// gameLocation is the path of the Get route for id, under whatever prefix
// the games group was mounted on.
func gameLocation(c *gin.Context, id uint) string {
	return fmt.Sprintf("%s/%d", strings.TrimSuffix(c.FullPath(), "/"), id)
}
