package identity

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/recipehub/backend/internal/domain/shared"
)

const (
	bcryptCost = 12

	minPasswordLength = 8
	maxEmailLength    = 255
	maxNameLength     = 255
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is the account aggregate. Users authenticate with email and
// password and own their recipes, tags, and ingredients.
type User struct {
	shared.BaseAggregateRoot
	Email             string
	Name              string
	PasswordHash      string
	Active            bool
	LastLoginAt       *time.Time
	PasswordChangedAt *time.Time
}

// NewUser creates an active user with a hashed password.
// The raw password is hashed immediately and never retained.
func NewUser(email, name, password string) (*User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_FAILED", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Name:              name,
		PasswordHash:      string(hash),
		Active:            true,
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))
	return user, nil
}

// VerifyPassword checks a raw password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetName updates the display name
func (u *User) SetName(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	u.Name = name
	u.UpdatedAt = time.Now()
	return nil
}

// SetPassword replaces the password with a newly hashed one
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_FAILED", "Failed to hash password")
	}
	now := time.Now()
	u.PasswordHash = string(hash)
	u.PasswordChangedAt = &now
	u.UpdatedAt = now
	u.AddDomainEvent(NewUserPasswordChangedEvent(u))
	return nil
}

// ChangePassword verifies the old password before setting the new one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// RecordLogin marks a successful authentication
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// Deactivate disables the account. Deactivated users cannot authenticate.
func (u *User) Deactivate() error {
	if !u.Active {
		return shared.NewDomainError("USER_ALREADY_INACTIVE", "User is already deactivated")
	}
	u.Active = false
	u.UpdatedAt = time.Now()
	u.AddDomainEvent(NewUserDeactivatedEvent(u))
	return nil
}

// CanAuthenticate reports whether the user may log in
func (u *User) CanAuthenticate() bool {
	return u.Active
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email is required")
	}
	if len(email) > maxEmailLength {
		return shared.NewDomainError("INVALID_EMAIL", "Email must not exceed 255 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name is required")
	}
	if len(name) > maxNameLength {
		return shared.NewDomainError("INVALID_NAME", "Name must not exceed 255 characters")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	return nil
}
