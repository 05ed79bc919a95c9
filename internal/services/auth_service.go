package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/warrantyit/server/internal/models"
	"github.com/warrantyit/server/internal/repository"
	appErr "github.com/warrantyit/server/pkg/errors"
	"github.com/warrantyit/server/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Profile is the account view returned by GET /api/auth/profile.
type Profile struct {
	User         *models.User `json:"user"`
	ProductCount int64        `json:"productCount"`
}

type AuthService interface {
	// Register creates an account and returns it with a signed token.
	// Duplicate emails fail with Conflict.
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	// Login verifies credentials and returns the user with a signed token.
	// Lookup failure and password mismatch produce the same Unauthorized error.
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	// Profile returns the account plus its product count.
	Profile(ctx context.Context, userID uuid.UUID) (*Profile, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hmacSecret []byte
	tokenTTL   time.Duration
}

func NewAuthService(userRepo repository.UserRepository, secret []byte, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		hmacSecret: secret,
		tokenTTL:   tokenTTL,
	}
}

var _ AuthService = (*authService)(nil)

func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// Pre-check for a clearer error; the unique index is the real guard.
	var existing models.User
	if err := s.userRepo.GetByEmail(ctx, email, &existing); err == nil {
		return nil, "", appErr.New(appErr.CodeConflict, "User with this email already exists")
	} else if !appErr.IsCode(err, appErr.CodeNotFound) {
		return nil, "", err
	}

	ph, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(ph),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, "", appErr.New(appErr.CodeConflict, "User with this email already exists")
		}
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	logger.L().Info("user registered", zap.String("user_id", user.ID.String()), zap.String("email", user.Email))
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.userRepo.GetByEmail(ctx, email, &user); err != nil {
		return nil, "", appErr.New(appErr.CodeUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", appErr.New(appErr.CodeUnauthorized, "Invalid email or password")
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, "", err
	}

	logger.L().Info("user logged in", zap.String("user_id", user.ID.String()), zap.String("email", user.Email))
	return &user, token, nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var user models.User
	if err := s.userRepo.GetByID(ctx, userID, &user); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "User not found")
		}
		return nil, err
	}

	count, err := s.userRepo.CountProducts(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{User: &user, ProductCount: count}, nil
}

func (s *authService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.ID.String(),
		"email": u.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.hmacSecret)
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "sign token failed")
	}
	return signed, nil
}
