package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "movienuts/internal/errors"
	"movienuts/internal/model"
	"movienuts/internal/repository"
	"movienuts/internal/validation"
)

// UserService serves public profiles and profile updates.
type UserService interface {
	List(ctx context.Context, page, limit int64) ([]model.User, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	UpdateProfile(ctx context.Context, subjectID string, input validation.ProfileUpdateInput) (*model.User, error)
}

type userService struct {
	userRepo  repository.UserRepository
	validator *validation.Validator
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, validator *validation.Validator) UserService {
	return &userService{userRepo: userRepo, validator: validator}
}

func (s *userService) List(ctx context.Context, page, limit int64) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.userRepo.List(ctx, page, limit)
}

func (s *userService) Get(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateProfile changes bio and profile picture only. Username, email and
// the password digest are not reachable from here.
func (s *userService) UpdateProfile(ctx context.Context, subjectID string, input validation.ProfileUpdateInput) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	if err := s.validator.Check(input); err != nil {
		return nil, err
	}

	fields := bson.M{}
	if input.Bio != nil {
		fields["bio"] = strings.TrimSpace(*input.Bio)
	}
	if input.ProfilePicture != nil {
		fields["profilePicture"] = *input.ProfilePicture
	}
	if len(fields) == 0 {
		return s.userRepo.FindByID(ctx, id)
	}

	return s.userRepo.UpdateProfile(ctx, id, fields)
}
