package service

import (
	"errors"                       // Error matching
	"task_tracker/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// AuthService handles registration, credential checks and identity
// lookup. Every operation takes its inputs explicitly; nothing is read
// from ambient request state.
type AuthService struct {
	db *gorm.DB // Database handle
}

// NewAuthService creates an AuthService backed by the given database
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register hashes the password and persists a new user.
// Returns ErrUsernameTaken when the username already exists
// (case-sensitive exact match).
func (s *AuthService) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyField // Both fields are required
	}
	// Check for an existing user with the same username
	var existing domain.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return ErrUsernameTaken // Username already in use
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err // Unexpected database error
	}
	// Hash the password; the plaintext is never stored or logged
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := domain.User{Username: username, Password: string(hash)}
	// A concurrent registration can still hit the unique index here
	if err := s.db.Create(&user).Error; err != nil {
		return ErrUsernameTaken
	}
	return nil
}

// Authenticate verifies a username/password pair and returns the user.
// A missing user and a wrong password are indistinguishable to the
// caller; both return ErrInvalidCredentials.
func (s *AuthService) Authenticate(username, password string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials // Unknown username
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials // Wrong password
	}
	return &user, nil
}

// LoadUser resolves a session-bound user ID to its user record. Called
// on every authenticated request; an ID that no longer resolves means
// the session is anonymous.
func (s *AuthService) LoadUser(id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
