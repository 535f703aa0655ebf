package sessionRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"statutesync/database/engine"
	"statutesync/database/repository/snapshot"
	"statutesync/models"

	"go.uber.org/zap"
)

// Login fabricates a profile from the email and stores it with a fresh token. No credential is checked.
func (r *engineSessionRepo) Login(ctx context.Context, email string, role models.Role) (*models.UserProfile, error) {
	if email == "" {
		email = DefaultEmail
	}
	if role == "" {
		role = models.RoleUser
	}

	profile := models.UserProfile{
		Name:   displayName(email),
		Email:  email,
		Role:   role,
		Avatar: AvatarFor(email),
	}
	if err := r.SaveUser(ctx, profile); err != nil {
		return nil, err
	}

	token, err := r.issuer(profile, r.opts.Clock())
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	if err := r.overwrite(ctx, authTokenKey, []byte(token)); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Logout clears the profile and the token.
func (r *engineSessionRepo) Logout(ctx context.Context) error {
	if err := r.eng.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	if err := r.eng.Delete(ctx, authTokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (r *engineSessionRepo) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := r.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Token returns the stored session token, or "" when signed out.
func (r *engineSessionRepo) Token(ctx context.Context) (string, error) {
	entry, ok, err := r.eng.Get(ctx, authTokenKey)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	if !ok {
		return "", nil
	}
	return string(entry.Value), nil
}

// GetUser returns the stored profile, or nil when signed out.
func (r *engineSessionRepo) GetUser(ctx context.Context) (*models.UserProfile, error) {
	entry, ok, err := r.eng.Get(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(entry.Value, &profile); err != nil {
		if r.opts.Policy != snapshot.PolicyReset {
			return nil, fmt.Errorf("%w: %s: %v", snapshot.ErrStorageCorrupt, userKey, err)
		}
		if r.opts.Logger != nil {
			r.opts.Logger.Warn("Dropping corrupt user profile", zap.Error(err))
		}
		if derr := r.eng.Delete(ctx, userKey); derr != nil {
			return nil, fmt.Errorf("clear corrupt user: %w", derr)
		}
		return nil, nil
	}
	return &profile, nil
}

// SaveUser replaces the stored profile.
func (r *engineSessionRepo) SaveUser(ctx context.Context, profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return r.overwrite(ctx, userKey, data)
}

// overwrite writes value over whatever revision is currently stored.
func (r *engineSessionRepo) overwrite(ctx context.Context, key string, value []byte) error {
	entry, _, err := r.eng.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	_, err = r.eng.Put(ctx, key, value, entry.Revision)
	if errors.Is(err, engine.ErrRevisionMismatch) {
		return fmt.Errorf("%w: %s", snapshot.ErrConflict, key)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// displayName is the local part of an email address.
func displayName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

// AvatarFor returns the deterministic avatar URL for an email.
func AvatarFor(email string) string {
	return avatarBase + url.QueryEscape(email)
}
