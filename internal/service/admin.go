package service

import (
	"context"
	"errors"
	"time"

	"github.com/feedbacklens/feedbacklens-go/internal/crypto"
	"github.com/feedbacklens/feedbacklens-go/internal/metrics"
	"github.com/feedbacklens/feedbacklens-go/internal/model"
)

var ErrInvalidAdminCredentials = errors.New("invalid admin credentials")

// AdminService authenticates the single operator account.
type AdminService struct {
	username  string
	password  string
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAdminService creates an AdminService for the configured credential pair.
// With an empty username or password every login is rejected.
func NewAdminService(username, password, secret string, expiry time.Duration) *AdminService {
	return &AdminService{
		username:  username,
		password:  password,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Login compares both fields in constant time and issues an admin token.
func (s *AdminService) Login(_ context.Context, req model.AdminLoginRequest) (resp model.AdminLoginResponse, err error) {
	defer func() { metrics.ObserveLogin("admin", err) }()

	userOK := crypto.SecretsEqual(req.Username, s.username)
	passOK := crypto.SecretsEqual(req.Password, s.password)
	if s.username == "" || s.password == "" || !(userOK && passOK) {
		return model.AdminLoginResponse{}, ErrInvalidAdminCredentials
	}

	token, err := crypto.GenerateToken(0, crypto.RoleAdmin, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AdminLoginResponse{}, err
	}

	return model.AdminLoginResponse{
		Message: "Admin login successful",
		IsAdmin: true,
		Token:   token,
	}, nil
}
