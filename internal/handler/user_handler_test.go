package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "movienuts/internal/errors"
	"movienuts/internal/model"
	"movienuts/internal/validation"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, page, limit int64) ([]model.User, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) Get(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, subjectID string, input validation.ProfileUpdateInput) (*model.User, error) {
	args := m.Called(ctx, subjectID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// A missing profile is an ordinary not-found, never the collapsed login
// message reserved for the auth endpoints.
func TestUserHandler_GetMissingUser(t *testing.T) {
	e := echo.New()
	id := primitive.NewObjectID()

	mockService := new(MockUserService)
	mockService.On("Get", mock.Anything, id).Return(nil, apperrors.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+id.Hex(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	err := NewUserHandler(mockService).Get(c)
	assert.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user not found")
	assert.NotContains(t, rec.Body.String(), "incorrect email or password")

	mockService.AssertExpectations(t)
}

func TestUserHandler_Get(t *testing.T) {
	e := echo.New()
	user := &model.User{ID: primitive.NewObjectID(), Username: "tester", Email: "a@b.com"}

	mockService := new(MockUserService)
	mockService.On("Get", mock.Anything, user.ID).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID.Hex(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(user.ID.Hex())

	err := NewUserHandler(mockService).Get(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tester")

	mockService.AssertExpectations(t)
}
