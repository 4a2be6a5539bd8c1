package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"movienuts/internal/model"
	"movienuts/internal/response"
	"movienuts/internal/service"
)

// MovieHandler handles catalog endpoints.
type MovieHandler struct {
	movieService service.MovieService
}

// NewMovieHandler creates a new movie handler.
func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// movieListShape wraps a catalog slice with its count for list rendering.
func movieListShape(v interface{}) interface{} {
	switch list := v.(type) {
	case []model.Movie:
		return map[string]interface{}{"results": list, "count": len(list)}
	case []model.MovieSummary:
		return map[string]interface{}{"results": list, "count": len(list)}
	}
	return v
}

// List godoc
// @Summary List the local catalog
// @Tags movies
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} errors.ErrorResponse
// @Router /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.movieService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return response.OK(c, movies, movieListShape)
}

// Genres godoc
// @Summary List distinct genres
// @Tags movies
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} errors.ErrorResponse
// @Router /movies/genres [get]
func (h *MovieHandler) Genres(c echo.Context) error {
	genres, err := h.movieService.Genres(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return response.OK(c, genres)
}

// Search godoc
// @Summary Search local movie titles
// @Tags movies
// @Produce json
// @Param q query string false "Title fragment"
// @Success 200 {object} response.Envelope
// @Failure 500 {object} errors.ErrorResponse
// @Router /movies/search [get]
func (h *MovieHandler) Search(c echo.Context) error {
	results, err := h.movieService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return response.OK(c, results, movieListShape)
}

// Import godoc
// @Summary Import one page of popular movies from TMDB
// @Tags movies
// @Produce json
// @Param page query int false "TMDB page" default(1)
// @Success 200 {object} response.Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /movies/import [post]
func (h *MovieHandler) Import(c echo.Context) error {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			page = parsed
		}
	}

	imported, err := h.movieService.ImportPopular(c.Request().Context(), page)
	if err != nil {
		return httpError(err)
	}

	return response.OK(c, map[string]interface{}{
		"imported": imported,
		"page":     page,
	})
}
