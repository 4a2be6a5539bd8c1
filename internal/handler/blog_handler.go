package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "movienuts/internal/errors"
	"movienuts/internal/response"
	"movienuts/internal/service"
	"movienuts/internal/validation"
)

// BlogHandler handles review endpoints.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// Create godoc
// @Summary Create a review
// @Description Persists a review owned by the authenticated user. Any author field in the payload is ignored.
// @Tags blogs
// @Accept json
// @Produce json
// @Param request body validation.BlogInput true "Review payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req validation.BlogInput
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidInputShape)
	}

	blog, err := h.blogService.Create(c.Request().Context(), subjectID(c), req)
	if err != nil {
		return httpError(err)
	}

	return response.Created(c, blog)
}

// ListByUser godoc
// @Summary List a user's reviews
// @Tags blogs
// @Produce json
// @Param id path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} service.BlogPage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blogs/user/{id} [get]
func (h *BlogHandler) ListByUser(c echo.Context) error {
	author, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.NewHTTPError(http.StatusBadRequest, "invalid user id", "BadRequest").ToErrorResponse())
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	result, err := h.blogService.ListByAuthor(c.Request().Context(), author, page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// ListRecent godoc
// @Summary List the newest reviews
// @Tags blogs
// @Produce json
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} response.Envelope
// @Failure 500 {object} errors.ErrorResponse
// @Router /blogs [get]
func (h *BlogHandler) ListRecent(c echo.Context) error {
	blogs, err := h.blogService.ListRecent(c.Request().Context(), queryInt(c, "limit", 20))
	if err != nil {
		return httpError(err)
	}
	return response.OK(c, blogs)
}

func queryInt(c echo.Context, name string, def int64) int64 {
	if v := c.QueryParam(name); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}
