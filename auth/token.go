// auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clinova/api/config"
	"github.com/clinova/api/model"
)

var (
	// ErrTokenInvalid indicates a malformed or tampered token.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired indicates a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token is expired")
)

// Claims is the payload of both token kinds: subject id plus the role copied
// from the identity at issuance. The role is trusted from the token on every
// request, never re-read from the store.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity converts verified claims into the typed request identity.
func (c *Claims) Identity() (model.AuthenticatedIdentity, error) {
	role, err := model.ParseRole(c.Role)
	if err != nil {
		return model.AuthenticatedIdentity{}, err
	}
	return model.AuthenticatedIdentity{UserID: c.Subject, Role: role}, nil
}

// TokenCodec signs and verifies the two token kinds. Each kind uses an
// independent secret and expiry, both injected through the configuration.
type TokenCodec struct {
	cfg config.AuthConfiguration
}

func NewTokenCodec(cfg config.AuthConfiguration) *TokenCodec {
	return &TokenCodec{cfg: cfg}
}

// IssueAccessToken mints a short-lived bearer token for {id, role}.
func (tc *TokenCodec) IssueAccessToken(userID string, role model.Role) (string, error) {
	return tc.issue(userID, role, []byte(tc.cfg.AccessSecret), tc.cfg.AccessExpiry)
}

// IssueRefreshToken mints the long-lived cookie-bound token. Same payload
// shape, different secret, longer expiry.
func (tc *TokenCodec) IssueRefreshToken(userID string, role model.Role) (string, error) {
	return tc.issue(userID, role, []byte(tc.cfg.RefreshSecret), tc.cfg.RefreshExpiry)
}

// VerifyAccessToken validates a token against the access secret.
func (tc *TokenCodec) VerifyAccessToken(token string) (*Claims, error) {
	return verify(token, []byte(tc.cfg.AccessSecret))
}

// VerifyRefreshToken validates a token against the refresh secret.
func (tc *TokenCodec) VerifyRefreshToken(token string) (*Claims, error) {
	return verify(token, []byte(tc.cfg.RefreshSecret))
}

func (tc *TokenCodec) issue(userID string, role model.Role, secret []byte, expiry time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("userID is required")
	}
	if len(secret) == 0 {
		return "", errors.New("signing secret is not configured")
	}

	now := time.Now().UTC()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func verify(token string, secret []byte) (*Claims, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
