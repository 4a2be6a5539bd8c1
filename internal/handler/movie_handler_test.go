package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"movienuts/internal/model"
)

// MockMovieService is a mock implementation of service.MovieService.
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) List(ctx context.Context) ([]model.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}

func (m *MockMovieService) Genres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMovieService) Search(ctx context.Context, query string) ([]model.MovieSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MovieSummary), args.Error(1)
}

func (m *MockMovieService) ImportPopular(ctx context.Context, page int) (int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).(int64), args.Error(1)
}

func TestMovieHandler_ListShapesResponse(t *testing.T) {
	e := echo.New()

	mockService := new(MockMovieService)
	mockService.On("List", mock.Anything).
		Return([]model.Movie{{Title: "Alien"}, {Title: "The Matrix"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewMovieHandler(mockService).List(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results"`)
	assert.Contains(t, rec.Body.String(), `"count":2`)

	mockService.AssertExpectations(t)
}

func TestMovieHandler_SearchShapesResponse(t *testing.T) {
	e := echo.New()

	mockService := new(MockMovieService)
	mockService.On("Search", mock.Anything, "alien").
		Return([]model.MovieSummary{{Title: "Alien"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/search?q=alien", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewMovieHandler(mockService).Search(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results"`)
	assert.Contains(t, rec.Body.String(), `"count":1`)

	mockService.AssertExpectations(t)
}
