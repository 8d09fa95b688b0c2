package services

import (
	"context"
	"errors"
	"time"

	"github.com/foliochat/foliochat/internal/models"
	pgrepo "github.com/foliochat/foliochat/internal/repositories/postgres"
	"github.com/foliochat/foliochat/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
	Me(ctx context.Context, caller models.CallerIdentity) (*models.User, error)
}

type authService struct {
	users  pgrepo.UserRepository
	secret []byte
	expiry time.Duration
}

func NewAuthService(users pgrepo.UserRepository, secret string, expiry time.Duration) AuthService {
	return &authService{users: users, secret: []byte(secret), expiry: expiry}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (string, error) {
	const op = "AuthService.Signup"

	if name == "" || email == "" || password == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "name, email, and password are required", nil)
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return "", utils.E(utils.CodeConflict, op, "email already exists", nil)
	case !errors.Is(err, utils.ErrNotFound):
		return "", utils.E(utils.CodeInternal, op, "failed to check existing user", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	// unknown email and wrong password are indistinguishable to the caller
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}
	if err := utils.CheckPassword(user.PasswordHash, password); err != nil {
		return "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return token, nil
}

func (s *authService) Me(ctx context.Context, caller models.CallerIdentity) (*models.User, error) {
	const op = "AuthService.Me"

	user, err := s.users.GetByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	return user, nil
}

type authClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		Email: user.Email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
