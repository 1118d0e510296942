// auth/google.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/clinova/api/config"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// ExternalProfile is the minimal identity returned by the provider exchange.
type ExternalProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CodeExchanger swaps an OAuth authorization code for an external profile.
type CodeExchanger interface {
	Exchange(ctx context.Context, code string) (*ExternalProfile, error)
}

// GoogleExchanger exchanges the code with Google and fetches the userinfo
// endpoint with the resulting token.
type GoogleExchanger struct {
	oauthConfig *oauth2.Config
}

func NewGoogleExchanger(cfg config.OAuthConfiguration) *GoogleExchanger {
	return &GoogleExchanger{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (g *GoogleExchanger) Exchange(ctx context.Context, code string) (*ExternalProfile, error) {
	token, err := g.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	resp, err := g.oauthConfig.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info endpoint returned status %d", resp.StatusCode)
	}

	var profile ExternalProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("provider returned no email")
	}
	return &profile, nil
}
