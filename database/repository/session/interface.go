package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"statutesync/database/engine"
	"statutesync/database/repository/snapshot"
	"statutesync/models"
)

const (
	userKey      = "statutesync_user"
	authTokenKey = "statutesync_auth_token"

	// DefaultEmail is used when a login arrives without an email.
	DefaultEmail = "demo@lexguard.ai"
	avatarBase   = "https://i.pravatar.cc/150?u="
)

// TokenIssuer fabricates the opaque session token stored at login.
type TokenIssuer func(profile models.UserProfile, issuedAt time.Time) (string, error)

// SessionRepository holds the single signed-in profile and its token.
type SessionRepository interface {
	Login(ctx context.Context, email string, role models.Role) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
	Token(ctx context.Context) (string, error)
	GetUser(ctx context.Context) (*models.UserProfile, error)
	SaveUser(ctx context.Context, profile models.UserProfile) error
}

type engineSessionRepo struct {
	eng    engine.Engine
	opts   snapshot.Options
	issuer TokenIssuer
}

// NewSessionRepo returns a SessionRepository. A nil issuer falls back to a millisecond timestamp token.
func NewSessionRepo(eng engine.Engine, opts snapshot.Options, issuer TokenIssuer) SessionRepository {
	if issuer == nil {
		issuer = timestampToken
	}
	return &engineSessionRepo{eng: eng, opts: opts, issuer: issuer}
}

func timestampToken(_ models.UserProfile, issuedAt time.Time) (string, error) {
	return fmt.Sprintf("session-token-%d", issuedAt.UnixMilli()), nil
}
