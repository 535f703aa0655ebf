package user

import (
	"context"
	"errors"

	sessionRepo "statutesync/database/repository/session"
	"statutesync/models"
)

var (
	// ErrUnauthorized is returned when no session exists or the bearer token does not match it.
	ErrUnauthorized = errors.New("not signed in")
	// ErrInvalidRole is returned for a login naming a role outside USER, ADMIN and LEGAL_PRO.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidProfile is returned when a profile update would leave the name empty.
	ErrInvalidProfile = errors.New("invalid profile")
)

type SessionService interface {
	Login(ctx context.Context, req models.LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (*AuthStatus, error)
	ValidateToken(ctx context.Context, token string) (*models.UserProfile, error)

	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error)
}

// TokenVerifier checks a bearer token's signature and returns the email it was issued for.
type TokenVerifier func(token string) (string, error)

// DefaultSessionService is the production implementation. When Verifier is set, a token must
// carry a valid signature for the session's email before it is compared with the stored one.
type DefaultSessionService struct {
	Repo     sessionRepo.SessionRepository
	Verifier TokenVerifier
}

// AuthResponse contains the signed-in profile and the bearer token for subsequent requests.
type AuthResponse struct {
	User  models.UserProfile `json:"user"`
	Token string             `json:"token"`
}

// AuthStatus reports whether a session is active.
type AuthStatus struct {
	Authenticated bool                `json:"authenticated"`
	User          *models.UserProfile `json:"user,omitempty"`
}
