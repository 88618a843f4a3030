package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/teslo-shop/catalog-api/internal/domain/entity"
	repo "github.com/teslo-shop/catalog-api/internal/domain/repository"
	"github.com/teslo-shop/catalog-api/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService registers and authenticates users and mints identity tokens.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// normalizeEmail canonicalizes an email address. Identity is
// case-insensitive: Eve@Teslo.com and eve@teslo.com are the same account,
// both at registration and at login.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores the new user with a hashed digest and mints a token
// bound to the new id. A duplicate email surfaces as repo.DuplicateError
// with the store's detail preserved.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	digest, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &entity.User{
		Email:    normalizeEmail(in.Email),
		Password: digest,
		FullName: in.FullName,
		Roles:    []entity.Role{entity.RoleUser},
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if repo.IsDuplicate(err) {
			return nil, "", err
		}
		helpers.LogError(s.Logger, "create user failed", err, logrus.Fields{"email": in.Email})
		return nil, "", repo.ErrStorage
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u.Sanitized(), token, nil
}

// Login verifies credentials against the digest. The lookup selects only
// id, email, and digest; both failure modes return the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Users.GetCredentialsByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		helpers.LogError(s.Logger, "credential lookup failed", err, nil)
		return nil, "", repo.ErrStorage
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u.Sanitized(), token, nil
}

// CheckStatus re-mints a token for an already-authenticated caller. No
// credential re-check and no store access.
func (s *AuthService) CheckStatus(user *entity.User) (*entity.User, string, error) {
	token, _, err := s.JWT.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user.Sanitized(), token, nil
}
