package auth

import (
	stderrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/pkg/crypto"
	"github.com/empowerher/empowerher/pkg/errors"
)

const minPasswordLength = 8

// RegisterInput carries the fields collected by the registration form.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// AccountService manages authentication records. Profile data lives in the
// user state store, not here.
type AccountService struct {
	db *gorm.DB
}

// NewAccountService builds an AccountService backed by the given database.
func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Register creates an account with a bcrypt-hashed password. Emails are
// normalised to lower case and must be unique.
func (s *AccountService) Register(input RegisterInput) (*models.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, errors.NewBadRequest("Email is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, errors.NewBadRequest("Password must be at least 8 characters")
	}

	var count int64
	if err := s.db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "Failed to check existing accounts")
	}
	if count > 0 {
		return nil, errors.ErrEmailTaken
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to hash password")
	}

	account := &models.Account{
		Email:     email,
		Password:  hash,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		IsActive:  true,
	}
	if err := s.db.Create(account).Error; err != nil {
		return nil, errors.Wrap(err, "Failed to create account")
	}

	return account, nil
}

// Authenticate verifies credentials and stamps the last login time. Both
// unknown emails and wrong passwords map to the same credentials error.
func (s *AccountService) Authenticate(email, password string) (*models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var account models.Account
	err := s.db.Where("email = ?", email).First(&account).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load account")
	}

	if !account.IsActive {
		return nil, errors.ErrForbidden
	}
	if !crypto.VerifyPassword(account.Password, password) {
		return nil, errors.ErrInvalidCredentials
	}

	now := time.Now()
	account.LastLoginAt = &now
	if err := s.db.Model(&account).Update("last_login_at", now).Error; err != nil {
		return nil, errors.Wrap(err, "Failed to update login time")
	}

	return &account, nil
}

// GetByID loads an account by its id.
func (s *AccountService) GetByID(id string) (*models.Account, error) {
	var account models.Account
	err := s.db.Where("id = ?", id).First(&account).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load account")
	}
	return &account, nil
}
