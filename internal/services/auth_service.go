package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/farhadzaidi/medassist/internal/apperr"
	"github.com/farhadzaidi/medassist/internal/domain"
	"github.com/farhadzaidi/medassist/internal/repository/user"
)

const tokenLifetime = 7 * 24 * time.Hour

type AuthService struct {
	userRepo     user.UserRepository
	jwtSecretKey string
	logger       Logger
}

func NewAuthService(userRepo user.UserRepository, jwtSecretKey string, logger Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		logger:       logger,
	}
}

// Register creates a new account. Duplicate emails fail with Conflict.
// On success the caller receives the stored user and a signed token.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" || password == "" || name == "" {
		return nil, "", apperr.Validation("Missing required fields")
	}
	if len(password) < 8 {
		return nil, "", apperr.Validation("Password must be at least 8 characters")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Internal("could not check account", err)
	}
	if exists {
		s.logger.Warn("registration failed - email already registered", "email", maskEmail(email))
		return nil, "", apperr.Conflict("Email already registered")
	}

	u := &domain.User{Email: email, Name: name}
	if err := u.HashPassword(password); err != nil {
		return nil, "", apperr.Validation(err.Error())
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		s.logger.Error("user creation failed", "error", err, "email", maskEmail(email))
		return nil, "", apperr.Internal("could not create account", err)
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, "", apperr.Internal("could not issue token", err)
	}

	s.logger.Info("user registered", "user_id", created.ID, "email", maskEmail(email))
	return created, token, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apperr.Validation("Missing required fields")
	}

	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("login failed - user not found", "email", maskEmail(email))
		return nil, "", apperr.Auth("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		s.logger.Warn("login failed - invalid password", "user_id", u.ID)
		return nil, "", apperr.Auth("Invalid email or password")
	}

	token, err := s.generateToken(u)
	if err != nil {
		s.logger.Error("token generation failed", "error", err, "user_id", u.ID)
		return nil, "", apperr.Internal("could not issue token", err)
	}

	s.logger.Info("login successful", "user_id", u.ID)
	return u, token, nil
}

// CurrentUser resolves the user behind a previously issued token.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*domain.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

// ValidateToken checks a token and returns the embedded user id.
func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, apperr.Auth("Not authenticated")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecretKey), nil
	})
	if err != nil {
		return 0, apperr.Wrap(apperr.KindAuth, "Not authenticated", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, apperr.Auth("Not authenticated")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, apperr.Auth("Not authenticated")
	}
	return uint(userID), nil
}

func (s *AuthService) generateToken(u *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecretKey))
}

// maskEmail hides the local part of an address in logs.
func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return "****"
	}
	return email[:1] + "****" + email[at:]
}
