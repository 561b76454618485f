package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/feedbacklens/feedbacklens-go/internal/crypto"
	"github.com/feedbacklens/feedbacklens-go/internal/metrics"
	"github.com/feedbacklens/feedbacklens-go/internal/model"
	"github.com/feedbacklens/feedbacklens-go/internal/repository"
)

var (
	ErrEmailTaken      = errors.New("email already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles signup and signin.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup creates an account. The password is stored only as an argon2id hash.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.MessageResponse, error) {
	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.MessageResponse{}, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.MessageResponse{}, ErrEmailTaken
		}
		return model.MessageResponse{}, err
	}

	metrics.SignupsTotal.Inc()
	return model.MessageResponse{Message: "User Registered Successfully"}, nil
}

// Signin checks a password against the stored hash. An unknown email and a
// wrong password are reported as different errors.
func (s *AuthService) Signin(ctx context.Context, req model.SigninRequest) (resp model.SigninResponse, err error) {
	defer func() { metrics.ObserveLogin("user", err) }()

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.SigninResponse{}, ErrUserNotFound
		}
		return model.SigninResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.SigninResponse{}, fmt.Errorf("verifying password for user %d: %w", user.ID, err)
	}
	if !match {
		return model.SigninResponse{}, ErrInvalidPassword
	}

	token, err := crypto.GenerateToken(user.ID, crypto.RoleUser, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.SigninResponse{}, err
	}

	return model.SigninResponse{
		Message:  "Login successful",
		UserID:   user.ID,
		UserName: user.Name,
		Token:    token,
	}, nil
}
