package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/coupon-api/internal/domain"
	"github.com/phrazzld/coupon-api/internal/platform/logger"
	"github.com/phrazzld/coupon-api/internal/service/auth"
	"github.com/phrazzld/coupon-api/internal/store"
)

// LoginResult is a successful login: the sanitized user and a bearer token.
type LoginResult struct {
	User  *domain.User
	Token string
}

// UserService provides login and registration.
type UserService interface {
	// Login checks the credentials and issues a token.
	// Any mismatch returns ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Register creates a user with a hashed password and returns it sanitized.
	// Returns store.ErrUsernameExists if the username is taken.
	Register(ctx context.Context, username, password, name, role string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.JWTService
	logger *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	logger *slog.Logger,
) (*UserServiceImpl, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if tokens == nil {
		return nil, domain.NewValidationError("tokens", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With(slog.String("component", "user_service")),
	}, nil
}

// Ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

// Login implements UserService.Login.
func (s *UserServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login for unknown user", slog.String("username", username))
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, NewUserServiceError("login", "failed to retrieve user", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			log.Warn("stored password hash unusable",
				slog.String("error", err.Error()),
				slog.String("username", username))
		} else {
			log.Debug("login with wrong password", slog.String("username", username))
		}
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, user)
	if err != nil {
		log.Error("failed to issue token",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, NewUserServiceError("login", "failed to issue token", err)
	}

	log.Info("user logged in",
		slog.Int("user_id", user.ID),
		slog.String("username", user.Username))
	return &LoginResult{User: user.Sanitized(), Token: token}, nil
}

// Register implements UserService.Register.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	username, password, name, role string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(username, password, name, role)
	if err != nil {
		log.Debug("invalid registration", slog.String("error", err.Error()))
		return nil, err
	}

	_, err = s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		log.Debug("username already exists", slog.String("username", username))
		return nil, store.ErrUsernameExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Error("failed to check username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, NewUserServiceError("register", "failed to check username", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, NewUserServiceError("register", "failed to hash password", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			log.Debug("username taken concurrently", slog.String("username", username))
			return nil, err
		}
		log.Error("failed to save user",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, NewUserServiceError("register", "failed to save user", err)
	}

	log.Info("user registered",
		slog.Int("user_id", user.ID),
		slog.String("username", user.Username),
		slog.String("role", user.Role))
	return user.Sanitized(), nil
}
