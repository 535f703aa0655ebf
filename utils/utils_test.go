package utils

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"statutesync/config"
	"statutesync/database/engine"
	"statutesync/database/repository"
	"statutesync/models"
	ai "statutesync/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenIssuer(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })
	config.AppConfig.JWTSecret = "test-secret"

	issue := SessionTokenIssuer()
	issuedAt := time.Unix(1_700_000_000, 0)
	token, err := issue(models.UserProfile{Email: "demo@x.com", Role: models.RoleAdmin}, issuedAt)
	require.NoError(t, err)

	sub, err := ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "demo@x.com", sub)

	// A different login mints a different token.
	other, err := issue(models.UserProfile{Email: "demo@x.com", Role: models.RoleAdmin}, issuedAt.Add(time.Second))
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	config.AppConfig.JWTSecret = "rotated"
	_, err = ExtractSubject(token)
	assert.Error(t, err)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(fmt.Errorf("get: %w", repository.ErrNotFound)))
	assert.Equal(t, http.StatusConflict, StatusFor(repository.ErrConflict))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(repository.ErrStorageCorrupt))
	assert.Equal(t, http.StatusBadRequest, StatusFor(repository.ErrUnknownFamily))
	assert.Equal(t, http.StatusBadGateway, StatusFor(fmt.Errorf("%w: timeout", ai.ErrUnavailable)))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(fmt.Errorf("disk full")))
}

type downEngine struct{ engine.Engine }

func (downEngine) Ping(context.Context) error { return fmt.Errorf("connection refused") }

func TestHealthMonitor(t *testing.T) {
	ctx := context.Background()

	up := NewHealthMonitor(engine.NewMemory(), "local", time.Minute)
	assert.True(t, up.Status().CheckedAt.IsZero())
	status := up.Check(ctx)
	assert.True(t, status.Storage)
	assert.Equal(t, "memory", status.Engine)
	assert.Equal(t, status, up.Status())

	down := NewHealthMonitor(downEngine{engine.NewMemory()}, "local", time.Minute)
	assert.False(t, down.Check(ctx).Storage)
}
