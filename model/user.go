// model/user.go
package model

import (
	"fmt"
	"time"
)

// Role is the closed set of permission classes governing route access.
// Comparison is exact and case-sensitive everywhere.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDoctor Role = "doctor"
	RoleStaff  Role = "staff"
	// RolePatient is accepted by registration validation but appears in no
	// route allow-list.
	RolePatient Role = "patient"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RoleStaff, RolePatient:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// User is a registered identity. PasswordHash is empty for OAuth-provisioned
// accounts and is never serialized.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash,omitempty"`
	Role         Role      `json:"role" bson:"role"`
	OAuthOrigin  bool      `json:"oauthOrigin" bson:"oauthOrigin"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
