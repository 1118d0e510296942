// model/auth.go
package model

// AuthenticatedIdentity is the decoded access-token identity attached to the
// request context by the verifier middleware and consumed by the role guard
// and by handlers that stamp createdBy.
type AuthenticatedIdentity struct {
	UserID string
	Role   Role
}

// RegisterInput is the registration request body.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult carries everything the auth controller needs to answer a
// successful login or OAuth callback. RefreshToken is transported only via
// the Set-Cookie header, never in a JSON body.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *User
}
