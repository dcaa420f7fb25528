package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/config"
)

const (
	testAccessSecret  = "access-secret-for-tests-0123456789ab"
	testRefreshSecret = "refresh-secret-for-tests-0123456789a"
)

// newTestService builds a service with a fixed clock so expiry behavior is
// deterministic.
func newTestService(now time.Time) *hmacJWTService {
	return &hmacJWTService{
		accessKey:       []byte(testAccessSecret),
		refreshKey:      []byte(testRefreshSecret),
		accessLifetime:  15 * time.Minute,
		refreshLifetime: 7 * 24 * time.Hour,
		timeFunc:        func() time.Time { return now },
		clockSkew:       2 * time.Minute,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	valid := config.AuthConfig{
		JWTSecret:                   testAccessSecret,
		JWTRefreshSecret:            testRefreshSecret,
		TokenLifetimeMinutes:        15,
		RefreshTokenLifetimeMinutes: 7 * 24 * 60,
	}

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()

		svc, err := NewJWTService(valid)
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, svc.AccessTokenLifetime())
	})

	t.Run("rejects short access secret", func(t *testing.T) {
		t.Parallel()

		cfg := valid
		cfg.JWTSecret = "too-short"
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})

	t.Run("rejects short refresh secret", func(t *testing.T) {
		t.Parallel()

		cfg := valid
		cfg.JWTRefreshSecret = "too-short"
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})

	t.Run("rejects identical secrets", func(t *testing.T) {
		t.Parallel()

		cfg := valid
		cfg.JWTRefreshSecret = cfg.JWTSecret
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)
	userID := uuid.New()

	tokenString, err := svc.GenerateAccessToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateAccessToken(ctx, tokenString)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, now.Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)
	userID := uuid.New()

	tokenString, err := svc.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(ctx, tokenString)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "refresh", claims.TokenType)
	assert.Equal(t, now.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestValidateExpiredToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(issued)

	tokenString, err := svc.GenerateAccessToken(ctx, uuid.New())
	require.NoError(t, err)

	// Advance well past the lifetime plus allowed skew.
	svc.timeFunc = func() time.Time { return issued.Add(time.Hour) }

	_, err = svc.ValidateAccessToken(ctx, tokenString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateWithinClockSkew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(issued)

	tokenString, err := svc.GenerateAccessToken(ctx, uuid.New())
	require.NoError(t, err)

	// One minute past expiry is still inside the two minute skew window.
	svc.timeFunc = func() time.Time { return issued.Add(16 * time.Minute) }

	_, err = svc.ValidateAccessToken(ctx, tokenString)
	assert.NoError(t, err)
}

func TestValidateRejectsWrongKindOfToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)
	userID := uuid.New()

	accessToken, err := svc.GenerateAccessToken(ctx, userID)
	require.NoError(t, err)
	refreshToken, err := svc.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	t.Run("access token is not a refresh token", func(t *testing.T) {
		t.Parallel()

		_, err := svc.ValidateRefreshToken(ctx, accessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		t.Parallel()

		_, err := svc.ValidateAccessToken(ctx, refreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidateRejectsWrongKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	other := newTestService(now)
	other.accessKey = []byte("a-completely-different-signing-key-x")

	tokenString, err := other.GenerateAccessToken(ctx, uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(ctx, tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(time.Now())

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "definitely.not.a-jwt"},
		{name: "unsigned token", token: "eyJhbGciOiJub25lIn0.eyJ1aWQiOiJ4In0."},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.ValidateAccessToken(ctx, tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
