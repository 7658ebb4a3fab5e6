package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"aedb-backend/internal/model"
	"aedb-backend/internal/schema"
	"aedb-backend/internal/token"
)

// AuthService handles user registration and token issuance.
type AuthService struct {
	db    *gorm.DB
	codec *token.Codec
}

// NewAuthService creates an AuthService on the given session.
func NewAuthService(db *gorm.DB, codec *token.Codec) *AuthService {
	return &AuthService{db: db, codec: codec}
}

// CreateUser registers a new user. The email must not be taken; the
// password is stored as a bcrypt hash only.
func (s *AuthService) CreateUser(u schema.CreateUser) (*schema.User, error) {
	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	rec := model.User{
		Name:           u.Name,
		Email:          u.Email,
		HashedPassword: string(hash),
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &schema.User{Name: rec.Name, Email: rec.Email}, nil
}

// Authenticate verifies the credentials and issues a signed bearer token.
// Unknown email yields ErrNotFound, a failed password check
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (*schema.Token, error) {
	var rec model.User
	err := s.db.Where("email = ?", email).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.HashedPassword), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	signed, err := s.codec.Sign(rec.Name, rec.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &schema.Token{AccessToken: signed, TokenType: token.Type}, nil
}
