package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "movienuts/internal/errors"
	"movienuts/internal/model"
	"movienuts/internal/validation"
)

// MockBlogRepository is a mock implementation of BlogRepository.
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) ListByAuthor(ctx context.Context, author primitive.ObjectID, page, limit int64) ([]model.Blog, int64, error) {
	args := m.Called(ctx, author, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Blog), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) ListRecent(ctx context.Context, limit int64) ([]model.Blog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Blog), args.Error(1)
}

func ratingPtr(f float64) *float64 { return &f }

func TestBlogService_Create(t *testing.T) {
	subject := primitive.NewObjectID()

	validInput := validation.BlogInput{
		Film:   map[string]interface{}{"title": "X", "posterPath": "/x.jpg"},
		Rating: ratingPtr(4.5),
		Title:  "Great",
		Body:   "Loved it",
	}

	tests := []struct {
		name          string
		subjectID     string
		input         validation.BlogInput
		setupMock     func(*MockBlogRepository)
		expectedError error
		wantIssues    bool
	}{
		{
			name:      "successful creation",
			subjectID: subject.Hex(),
			input:     validInput,
			setupMock: func(m *MockBlogRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Blog")).
					Run(func(args mock.Arguments) {
						blog := args.Get(1).(*model.Blog)
						blog.ID = primitive.NewObjectID()
					}).
					Return(nil)
			},
		},
		{
			name:          "missing subject",
			subjectID:     "",
			input:         validInput,
			setupMock:     func(m *MockBlogRepository) {},
			expectedError: apperrors.ErrUnauthenticated,
		},
		{
			name:          "garbage subject",
			subjectID:     "not-an-object-id",
			input:         validInput,
			setupMock:     func(m *MockBlogRepository) {},
			expectedError: apperrors.ErrTokenInvalid,
		},
		{
			name:      "invalid payload never reaches the store",
			subjectID: subject.Hex(),
			input:     validation.BlogInput{Film: map[string]interface{}{"title": "X"}},
			setupMock: func(m *MockBlogRepository) {},
			wantIssues: true,
		},
		{
			// Required alone accepts "   ", which would trim to an empty
			// title on the stored review.
			name:      "whitespace-only title rejected",
			subjectID: subject.Hex(),
			input: validation.BlogInput{
				Film:   map[string]interface{}{"title": "X"},
				Rating: ratingPtr(4),
				Title:  "   ",
				Body:   "Loved it",
			},
			setupMock:  func(m *MockBlogRepository) {},
			wantIssues: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBlogRepository)
			tt.setupMock(mockRepo)

			service := NewBlogService(mockRepo, validation.New())
			blog, err := service.Create(context.Background(), tt.subjectID, tt.input)

			switch {
			case tt.wantIssues:
				var validationErr *apperrors.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Nil(t, blog)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, blog)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, blog)
				assert.Equal(t, subject, blog.Author)
				assert.Equal(t, 4.5, blog.Rating)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBlogService_CreateIgnoresClientAuthor(t *testing.T) {
	subject := primitive.NewObjectID()
	intruder := primitive.NewObjectID()

	mockRepo := new(MockBlogRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Blog")).Return(nil)

	service := NewBlogService(mockRepo, validation.New())

	// A client smuggling an author into the payload changes nothing: the
	// input shape has no author field, and the film snapshot is opaque data.
	blog, err := service.Create(context.Background(), subject.Hex(), validation.BlogInput{
		Film:   map[string]interface{}{"title": "X", "author": intruder.Hex()},
		Rating: ratingPtr(4),
		Title:  "Great",
		Body:   "Loved it",
	})

	assert.NoError(t, err)
	assert.Equal(t, subject, blog.Author)
	assert.NotEqual(t, intruder, blog.Author)
}

func TestBlogService_ListByAuthor(t *testing.T) {
	author := primitive.NewObjectID()

	tests := []struct {
		name               string
		page, limit        int64
		total              int64
		expectedPage       int64
		expectedTotalPages int64
	}{
		{name: "exact pages", page: 1, limit: 10, total: 30, expectedPage: 1, expectedTotalPages: 3},
		{name: "partial last page", page: 2, limit: 10, total: 25, expectedPage: 2, expectedTotalPages: 3},
		{name: "defaults applied", page: 0, limit: -5, total: 5, expectedPage: 1, expectedTotalPages: 1},
		{name: "no reviews", page: 1, limit: 10, total: 0, expectedPage: 1, expectedTotalPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBlogRepository)
			mockRepo.On("ListByAuthor", mock.Anything, author, tt.expectedPage, mock.AnythingOfType("int64")).
				Return([]model.Blog{}, tt.total, nil)

			service := NewBlogService(mockRepo, validation.New())
			result, err := service.ListByAuthor(context.Background(), author, tt.page, tt.limit)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPage, result.Page)
			assert.Equal(t, tt.expectedTotalPages, result.TotalPages)

			mockRepo.AssertExpectations(t)
		})
	}
}
