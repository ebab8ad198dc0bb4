package identity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains the input for user registration
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains user information returned by the API
type UserInfo struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Active    bool
	CreatedAt time.Time
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout.
// TokenID and RemainingTTL come from the validated access token claims.
type LogoutInput struct {
	UserID       uuid.UUID
	TokenID      string
	RemainingTTL time.Duration
	Everywhere   bool // also invalidate tokens issued to other sessions
}

// UpdateProfileInput contains the input for profile updates.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	Name     *string
	Password *string
}
