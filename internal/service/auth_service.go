package service

import (
	"context"
	"strings"

	"movienuts/internal/auth"
	apperrors "movienuts/internal/errors"
	"movienuts/internal/model"
	"movienuts/internal/repository"
	"movienuts/internal/validation"
)

// AuthService orchestrates validator, credential store, hasher and token
// issuer into the registration and login workflows.
type AuthService interface {
	Register(ctx context.Context, input validation.RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, input validation.LoginInput) (*model.User, string, error)
}

type authService struct {
	userRepo  repository.UserRepository
	hasher    *auth.PasswordHasher
	issuer    *auth.TokenIssuer
	validator *validation.Validator
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher *auth.PasswordHasher, issuer *auth.TokenIssuer, validator *validation.Validator) AuthService {
	return &authService{
		userRepo:  userRepo,
		hasher:    hasher,
		issuer:    issuer,
		validator: validator,
	}
}

// Register creates a new user and returns it with a fresh session token.
// No existence pre-check is made: the store's unique indexes arbitrate
// concurrent duplicates and the repository reports ErrDuplicateUser.
func (s *authService) Register(ctx context.Context, input validation.RegisterInput) (*model.User, string, error) {
	if err := s.validator.Check(input); err != nil {
		return nil, "", err
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issuer.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh session
// token. "No such user" and "wrong password" stay distinct here so
// diagnostics can tell them apart; the HTTP layer collapses both into one
// external message.
func (s *authService) Login(ctx context.Context, input validation.LoginInput) (*model.User, string, error) {
	if err := s.validator.Check(input); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, "", err
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
