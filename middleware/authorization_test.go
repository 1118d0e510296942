// middleware/authorization_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/clinova/api/auth"
	"github.com/clinova/api/middleware"
	"github.com/clinova/api/model"
)

func setupGuardedRouter(codec *auth.TokenCodec, allowed ...model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded",
		middleware.Authenticate(codec),
		middleware.Authorize(allowed...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func doGuardedRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	return w
}

func TestAuthorize(t *testing.T) {
	codec := testCodec()

	t.Run("RoleInAllowList", func(t *testing.T) {
		router := setupGuardedRouter(codec, model.RoleAdmin, model.RoleDoctor)
		token, err := codec.IssueAccessToken("user-1", model.RoleDoctor)
		assert.NoError(t, err)

		w := doGuardedRequest(router, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("RoleNotInAllowList", func(t *testing.T) {
		router := setupGuardedRouter(codec, model.RoleAdmin)
		token, err := codec.IssueAccessToken("user-1", model.RoleStaff)
		assert.NoError(t, err)

		w := doGuardedRequest(router, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "INSUFFICIENT_PERMISSIONS", *envelope.Code)
	})

	t.Run("RoleComparisonIsCaseSensitive", func(t *testing.T) {
		router := setupGuardedRouter(codec, model.RoleAdmin)
		token, err := codec.IssueAccessToken("user-1", model.Role("Admin"))
		assert.NoError(t, err)

		w := doGuardedRequest(router, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "INSUFFICIENT_PERMISSIONS", *envelope.Code)
	})

	t.Run("EmptyAllowListDeniesEveryone", func(t *testing.T) {
		router := setupGuardedRouter(codec)
		token, err := codec.IssueAccessToken("user-1", model.RoleAdmin)
		assert.NoError(t, err)

		w := doGuardedRequest(router, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "INSUFFICIENT_PERMISSIONS", *envelope.Code)
	})

	t.Run("MissingRoleClaim", func(t *testing.T) {
		router := setupGuardedRouter(codec, model.RoleAdmin)
		token, err := codec.IssueAccessToken("user-1", model.Role(""))
		assert.NoError(t, err)

		w := doGuardedRequest(router, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "ROLE_MISSING", *envelope.Code)
	})

	t.Run("NoIdentityOnContext", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/guarded",
			middleware.Authorize(model.RoleAdmin),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/guarded", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "UNAUTHENTICATED", *envelope.Code)
	})
}
