package service

import (
	"context"
	"errors"
	"fmt"

	"farmstand/internal/auth"
	"farmstand/internal/model"
	"farmstand/internal/repository"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register creates a new user with a hashed password. The email lookup
// is only a fast path; the storage-level unique constraint is the
// authoritative guard, and a concurrent duplicate insert converts into
// the same ErrEmailTaken.
func (s *userService) Register(ctx context.Context, email, fullName, password string, isFarmer bool) (*model.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to check for existing user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Str("email", email).Msg("email already registered")
		return nil, model.ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user := &model.User{
		Email:          email,
		HashedPassword: hash,
		FullName:       fullName,
		IsFarmer:       isFarmer,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return nil, model.ErrEmailTaken
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Bool("is_farmer", user.IsFarmer).
		Msg("user registered")

	return user, nil
}

// Login verifies credentials and returns the matching user. Unknown
// email and wrong password yield the identical error so callers cannot
// probe which emails are registered.
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user for login")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if user == nil || !auth.VerifyPassword(password, user.HashedPassword) {
		s.logger.Debug().Str("email", email).Msg("login rejected")
		return nil, model.ErrInvalidCredentials
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("login succeeded")

	return user, nil
}
