// auth/token_test.go
package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clinova/api/auth"
	"github.com/clinova/api/config"
	"github.com/clinova/api/model"
)

func testAuthConfig() config.AuthConfiguration {
	return config.AuthConfiguration{
		AccessSecret:  "access-secret-for-tests",
		AccessExpiry:  15 * time.Minute,
		RefreshSecret: "refresh-secret-for-tests",
		RefreshExpiry: 168 * time.Hour,
	}
}

func TestTokenCodec(t *testing.T) {
	codec := auth.NewTokenCodec(testAuthConfig())

	t.Run("AccessToken_RoundTrip", func(t *testing.T) {
		token, err := codec.IssueAccessToken("user-1", model.RoleDoctor)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := codec.VerifyAccessToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "doctor", claims.Role)
	})

	t.Run("RefreshToken_RoundTrip", func(t *testing.T) {
		token, err := codec.IssueRefreshToken("user-2", model.RoleStaff)
		assert.NoError(t, err)

		claims, err := codec.VerifyRefreshToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-2", claims.Subject)
		assert.Equal(t, "staff", claims.Role)
	})

	t.Run("SecretsAreIndependent", func(t *testing.T) {
		accessToken, err := codec.IssueAccessToken("user-1", model.RoleAdmin)
		assert.NoError(t, err)
		refreshToken, err := codec.IssueRefreshToken("user-1", model.RoleAdmin)
		assert.NoError(t, err)

		_, err = codec.VerifyRefreshToken(accessToken)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)

		_, err = codec.VerifyAccessToken(refreshToken)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.AccessExpiry = -time.Minute
		expiredCodec := auth.NewTokenCodec(cfg)

		token, err := expiredCodec.IssueAccessToken("user-1", model.RoleAdmin)
		assert.NoError(t, err)

		_, err = codec.VerifyAccessToken(token)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("TamperedToken", func(t *testing.T) {
		token, err := codec.IssueAccessToken("user-1", model.RoleAdmin)
		assert.NoError(t, err)

		_, err = codec.VerifyAccessToken(token + "x")
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("EmptyToken", func(t *testing.T) {
		_, err := codec.VerifyAccessToken("")
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("EmptyUserID", func(t *testing.T) {
		_, err := codec.IssueAccessToken("", model.RoleAdmin)
		assert.Error(t, err)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		empty := auth.NewTokenCodec(config.AuthConfiguration{})
		_, err := empty.IssueAccessToken("user-1", model.RoleAdmin)
		assert.Error(t, err)
	})
}

func TestClaimsIdentity(t *testing.T) {
	codec := auth.NewTokenCodec(testAuthConfig())

	t.Run("KnownRole", func(t *testing.T) {
		token, err := codec.IssueRefreshToken("user-1", model.RolePatient)
		assert.NoError(t, err)

		claims, err := codec.VerifyRefreshToken(token)
		assert.NoError(t, err)

		identity, err := claims.Identity()
		assert.NoError(t, err)
		assert.Equal(t, "user-1", identity.UserID)
		assert.Equal(t, model.RolePatient, identity.Role)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		token, err := codec.IssueRefreshToken("user-1", model.Role("superuser"))
		assert.NoError(t, err)

		claims, err := codec.VerifyRefreshToken(token)
		assert.NoError(t, err)

		_, err = claims.Identity()
		assert.Error(t, err)
	})
}
