package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fittrackpro/backend/internal/config"
	"github.com/fittrackpro/backend/internal/dto"
	"github.com/fittrackpro/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) error {
	if req.Email == "" || req.Name == "" || req.Password == "" {
		return ErrMissingFields
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	var existing models.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	switch {
	case err == nil:
		return ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login verifies the credentials and issues a signed bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(req *dto.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", ErrMissingFields
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.GenerateToken(&user)
}

// GenerateToken signs an HS256 token carrying only the user id. Profile
// fields are read fresh on every /me call, so nothing in the token can
// go stale.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) CurrentUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}
