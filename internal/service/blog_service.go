package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "movienuts/internal/errors"
	"movienuts/internal/model"
	"movienuts/internal/repository"
	"movienuts/internal/validation"
)

// BlogPage is one page of an author's reviews plus pager data.
type BlogPage struct {
	Blogs      []model.Blog `json:"blogs"`
	Page       int64        `json:"page"`
	TotalPages int64        `json:"totalPages"`
}

// BlogService handles review creation and listing.
type BlogService interface {
	Create(ctx context.Context, subjectID string, input validation.BlogInput) (*model.Blog, error)
	ListByAuthor(ctx context.Context, author primitive.ObjectID, page, limit int64) (*BlogPage, error)
	ListRecent(ctx context.Context, limit int64) ([]model.Blog, error)
}

type blogService struct {
	blogRepo  repository.BlogRepository
	validator *validation.Validator
}

// NewBlogService creates a new blog service.
func NewBlogService(blogRepo repository.BlogRepository, validator *validation.Validator) BlogService {
	return &blogService{
		blogRepo:  blogRepo,
		validator: validator,
	}
}

// Create persists a review owned by the verified token subject. The input
// shape has no author field, so nothing a client sends can override
// authorship.
func (s *blogService) Create(ctx context.Context, subjectID string, input validation.BlogInput) (*model.Blog, error) {
	if subjectID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	author, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	if err := s.validator.Check(input); err != nil {
		return nil, err
	}

	blog := &model.Blog{
		Author: author,
		Film:   input.Film,
		Rating: *input.Rating,
		Title:  strings.TrimSpace(input.Title),
		Body:   input.Body,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// ListByAuthor returns one page of an author's reviews, newest first.
func (s *blogService) ListByAuthor(ctx context.Context, author primitive.ObjectID, page, limit int64) (*BlogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	blogs, total, err := s.blogRepo.ListByAuthor(ctx, author, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return &BlogPage{
		Blogs:      blogs,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *blogService) ListRecent(ctx context.Context, limit int64) ([]model.Blog, error) {
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return s.blogRepo.ListRecent(ctx, limit)
}
