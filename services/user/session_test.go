package user

import (
	"context"
	"errors"
	"testing"

	"statutesync/database/engine"
	sessionRepo "statutesync/database/repository/session"
	"statutesync/database/repository/snapshot"
	"statutesync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *DefaultSessionService {
	return &DefaultSessionService{Repo: sessionRepo.NewSessionRepo(engine.NewMemory(), snapshot.Options{}, nil)}
}

func TestLoginIssuesToken(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: " demo@x.com ", Password: "ignored", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "demo", resp.User.Name)
	assert.Equal(t, "demo@x.com", resp.User.Email)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	profile, err := svc.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User, *profile)

	_, err = svc.ValidateToken(ctx, "forged")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	_, err := newService().Login(context.Background(), models.LoginRequest{Email: "a@b.c", Role: "ROOT"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.c"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.ValidateToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.ValidateToken(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Authenticated)
	assert.Nil(t, status.User)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.UpdateProfile(ctx, models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "a@b.c"})
	require.NoError(t, err)

	name := "Ada"
	profile, err := svc.UpdateProfile(ctx, models.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, "a@b.c", profile.Email)

	stored, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, stored)

	blank := "  "
	_, err = svc.UpdateProfile(ctx, models.ProfileUpdate{Name: &blank})
	assert.ErrorIs(t, err, ErrInvalidProfile)

	avatar := "https://example.org/a.png"
	_, err = svc.UpdateProfile(ctx, models.ProfileUpdate{Avatar: &avatar})
	assert.ErrorIs(t, err, ErrInvalidProfile)

	stored, err = svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Name)
	assert.NotEqual(t, avatar, stored.Avatar)
}

func TestValidateTokenChecksSignature(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	resp, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.c"})
	require.NoError(t, err)

	svc.Verifier = func(string) (string, error) { return "", errors.New("signature is invalid") }
	_, err = svc.ValidateToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	svc.Verifier = func(string) (string, error) { return "someone@else.org", nil }
	_, err = svc.ValidateToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	svc.Verifier = func(token string) (string, error) {
		assert.Equal(t, resp.Token, token)
		return "a@b.c", nil
	}
	profile, err := svc.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", profile.Email)
}
