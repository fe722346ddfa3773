package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gazinassis/opshub-backend/internal/config"
	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/gazinassis/opshub-backend/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login attempt. The cause
// (unknown email vs wrong password) is deliberately not disclosed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles admin authentication
type AuthService struct {
	adminUserRepo repositories.AdminUserRepository
	cfg           *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(adminUserRepo repositories.AdminUserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		adminUserRepo: adminUserRepo,
		cfg:           cfg,
	}
}

// Login verifies credentials and returns a signed JWT and the account
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.AdminUser, error) {
	user, err := s.adminUserRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates a new admin account with a hashed password
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error) {
	existing, err := s.adminUserRepo.FindByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, errors.New("an account with this email already exists")
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		// A transient read failure must not skip the duplicate check
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "editor"
	}

	user := &models.AdminUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.adminUserRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) generateToken(user *models.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.Hex(),
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(time.Duration(s.cfg.JWT.ExpiresIn) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}
