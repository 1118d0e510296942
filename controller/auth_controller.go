// controller/auth_controller.go
package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinova/api/config"
	clinova_errors "github.com/clinova/api/errors"
	"github.com/clinova/api/model"
	"github.com/clinova/api/service"
	"github.com/clinova/api/util"
)

const refreshCookieName = "refreshToken"

type AuthController struct {
	authService   service.IAuthService
	refreshExpiry time.Duration
	frontendURL   string
	secureCookie  bool
}

func NewAuthController(authService service.IAuthService, cfg *config.Configuration) *AuthController {
	return &AuthController{
		authService:   authService,
		refreshExpiry: cfg.Auth.RefreshExpiry,
		frontendURL:   cfg.Frontend.URL,
		secureCookie:  cfg.Server.Mode == "production",
	}
}

// RegisterRoutes registers the API routes
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup) {
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", ac.Register)
		authRoutes.POST("/login", ac.Login)
		authRoutes.GET("/refresh-token", ac.RefreshToken)
		authRoutes.GET("/google/callback", ac.GoogleCallback)
	}
}

// Register endpoint
func (ac *AuthController) Register(c *gin.Context) {
	var input model.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails(err.Error()))
		return
	}

	user, err := ac.authService.Register(c, input)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "User registered successfully", gin.H{
		"userId": user.ID,
		"name":   user.Name,
		"email":  user.Email,
	})
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var input model.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails(err.Error()))
		return
	}

	result, err := ac.authService.Login(c, input)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	// The refresh token travels only via the Set-Cookie header.
	ac.setRefreshCookie(c, result.RefreshToken)

	util.RespondSuccess(c, http.StatusOK, "Login successful", gin.H{
		"accessToken": result.AccessToken,
		"userId":      result.User.ID,
		"name":        result.User.Name,
		"role":        result.User.Role,
	})
}

// RefreshToken endpoint. The existing refresh cookie is left untouched: the
// same refresh token stays valid until its own expiry.
func (ac *AuthController) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		util.RespondError(c, clinova_errors.ErrMissingToken)
		return
	}

	accessToken, err := ac.authService.Refresh(c, refreshToken)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Access token refreshed", gin.H{
		"accessToken": accessToken,
	})
}

// GoogleCallback endpoint. Redirects to the front end with the access token
// as a query parameter, which the SPA expects.
func (ac *AuthController) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		util.RespondError(c, clinova_errors.ErrInvalidInput.WithDetails("missing authorization code"))
		return
	}

	result, err := ac.authService.OAuthLogin(c, code)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	ac.setRefreshCookie(c, result.RefreshToken)

	redirectURL := fmt.Sprintf("%s/oauth/success?accessToken=%s",
		ac.frontendURL, url.QueryEscape(result.AccessToken))
	c.Redirect(http.StatusFound, redirectURL)
}

func (ac *AuthController) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		refreshCookieName,
		refreshToken,
		int(ac.refreshExpiry.Seconds()),
		"/",
		"",
		ac.secureCookie,
		true, // HttpOnly
	)
}
