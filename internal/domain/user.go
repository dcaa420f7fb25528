package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common user validation errors
var (
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// User represents a registered user of the application.
// Users are created at registration and are immutable thereafter; no exposed
// operation updates or deletes them.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-"` // Never expose the password hash
	CreatedAt      time.Time `json:"createdAt"`
}

// NewUser creates a new User with the given email and name.
// It generates a new UUID for the user ID and sets the creation timestamp.
// The caller is responsible for hashing the password and setting
// HashedPassword before the user is stored.
func NewUser(email, name string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// validateEmailFormat performs basic validation of email format: an @ that
// is neither first nor last, and a dot somewhere inside the domain part.
// Handler-level validation uses the stricter validator tag; this is a last
// line of defense for users constructed in code.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domain := email[atIndex+1:]
	dotIndex := strings.IndexByte(domain, '.')
	return dotIndex > 0 && dotIndex < len(domain)-1
}
