// middleware/authentication_test.go
package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/clinova/api/auth"
	"github.com/clinova/api/config"
	"github.com/clinova/api/middleware"
	"github.com/clinova/api/model"
	"github.com/clinova/api/util"
)

func testCodec() *auth.TokenCodec {
	return auth.NewTokenCodec(config.AuthConfiguration{
		AccessSecret:  "access-secret-for-tests",
		AccessExpiry:  15 * time.Minute,
		RefreshSecret: "refresh-secret-for-tests",
		RefreshExpiry: 168 * time.Hour,
	})
}

func setupAuthenticatedRouter(codec *auth.TokenCodec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", middleware.Authenticate(codec), func(c *gin.Context) {
		identity, _ := middleware.IdentityFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "role": identity.Role})
	})
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) util.Envelope {
	t.Helper()
	var envelope util.Envelope
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	return envelope
}

func TestAuthenticate(t *testing.T) {
	codec := testCodec()
	router := setupAuthenticatedRouter(codec)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := codec.IssueAccessToken("user-1", model.RoleDoctor)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "user-1", body["userId"])
		assert.Equal(t, "doctor", body["role"])
	})

	t.Run("MissingHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.False(t, envelope.Success)
		assert.Equal(t, "fail", envelope.Status)
		assert.Equal(t, "MISSING_TOKEN", *envelope.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		token, err := codec.IssueAccessToken("user-1", model.RoleDoctor)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Token "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "MISSING_TOKEN", *envelope.Code)
	})

	t.Run("TamperedToken", func(t *testing.T) {
		token, err := codec.IssueAccessToken("user-1", model.RoleDoctor)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "TOKEN_EXPIRED", *envelope.Code)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		expiredCodec := auth.NewTokenCodec(config.AuthConfiguration{
			AccessSecret: "access-secret-for-tests",
			AccessExpiry: -time.Minute,
		})
		token, err := expiredCodec.IssueAccessToken("user-1", model.RoleDoctor)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		// Expired and tampered produce the same answer.
		assert.Equal(t, http.StatusForbidden, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "TOKEN_EXPIRED", *envelope.Code)
	})

	t.Run("RefreshTokenRejectedAsBearer", func(t *testing.T) {
		refreshToken, err := codec.IssueRefreshToken("user-1", model.RoleDoctor)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+refreshToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
