package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SignupRequest registers an account. Role may be given as text or, for older
// clients, as the isTeacher flag; Username is accepted in place of Name.
type SignupRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Username  string `json:"username,omitempty" validate:"-"`
	Email     string `json:"email" validate:"required,email,max=190"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	Role      string `json:"role" validate:"required,oneof=parent teacher student"`
	IsTeacher *bool  `json:"isTeacher,omitempty" validate:"-"`
}

// Normalize folds the legacy fields into Name and Role.
func (r *SignupRequest) Normalize() {
	if r.Name == "" {
		r.Name = r.Username
	}
	if role, ok := ParseRole(r.Role); ok {
		r.Role = string(role)
	} else if r.Role == "" && r.IsTeacher != nil {
		if *r.IsTeacher {
			r.Role = string(RoleTeacher)
		} else {
			r.Role = string(RoleStudent)
		}
	}
}

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the user, the role flag older clients rely on and an access token.
type LoginResponse struct {
	User        UserInfo `json:"user"`
	IsTeacher   bool     `json:"isTeacher"`
	AccessToken string   `json:"access_token"`
	ExpiresIn   int64    `json:"expires_in"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID   string   `json:"user_id"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	jwt.RegisteredClaims
}
