package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/josh-kwaku/teller-ledger/internal/auth"
	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/logging"
)

type UserService struct {
	users     userRepository
	gate      permissionGate
	jwtSecret string
	jwtExpiry time.Duration
	now       func() time.Time
}

func NewUserService(users userRepository, gate permissionGate, jwtSecret string, jwtExpiry time.Duration) *UserService {
	return &UserService{
		users:     users,
		gate:      gate,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// Login checks the password and issues a token carrying the user's role.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, userID, password string) (*LoginResult, error) {
	u, err := s.users.GetByID(ctx, strings.TrimSpace(userID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("Login: %w", domain.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("Login: %w", err)
	}

	match, err := auth.CheckPassword(u.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	if !match {
		return nil, fmt.Errorf("Login: %w", domain.ErrInvalidCredentials)
	}

	token, expiresAt, err := auth.GenerateToken(u.ID, u.Role, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}

	logging.FromContext(ctx).Info("user logged in", "user_id", u.ID, "role", u.Role)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: u}, nil
}

type NewUser struct {
	ID       string
	Username string
	Password string
	Role     domain.Role
}

func (s *UserService) RegisterUser(ctx context.Context, req NewUser) (*domain.User, error) {
	if !s.gate.HasPermission(ctx, domain.PermCreateUser) {
		return nil, fmt.Errorf("RegisterUser: %w", domain.ErrPermissionDenied)
	}

	id := strings.TrimSpace(req.ID)
	username := strings.TrimSpace(req.Username)
	if id == "" || username == "" {
		return nil, fmt.Errorf("RegisterUser: user id and username required: %w", domain.ErrInvalidRequest)
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("RegisterUser: role %q: %w", req.Role, domain.ErrInvalidRequest)
	}
	if len(req.Password) < auth.MinPasswordLength {
		return nil, fmt.Errorf("RegisterUser: password shorter than %d: %w", auth.MinPasswordLength, domain.ErrInvalidRequest)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("RegisterUser: %w", err)
	}

	u := &domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("RegisterUser: %w", err)
	}

	logging.FromContext(ctx).Info("user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// ChangePassword is only available to the caller for their own account.
func (s *UserService) ChangePassword(ctx context.Context, current, next string) error {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return fmt.Errorf("ChangePassword: %w", domain.ErrPermissionDenied)
	}
	if len(next) < auth.MinPasswordLength {
		return fmt.Errorf("ChangePassword: password shorter than %d: %w", auth.MinPasswordLength, domain.ErrInvalidRequest)
	}

	u, err := s.users.GetByID(ctx, id.UserID)
	if err != nil {
		return fmt.Errorf("ChangePassword: %w", err)
	}
	match, err := auth.CheckPassword(u.PasswordHash, current)
	if err != nil {
		return fmt.Errorf("ChangePassword: %w", err)
	}
	if !match {
		return fmt.Errorf("ChangePassword: %w", domain.ErrInvalidCredentials)
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("ChangePassword: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return fmt.Errorf("ChangePassword: %w", err)
	}

	logging.FromContext(ctx).Info("password changed", "user_id", u.ID)
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if !s.gate.HasPermission(ctx, domain.PermCreateUser) {
		return nil, fmt.Errorf("ListUsers: %w", domain.ErrPermissionDenied)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}
