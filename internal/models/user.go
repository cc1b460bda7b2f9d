package models

import (
	"strings"
	"time"
)

// UserRole is the account type chosen at signup.
type UserRole string

const (
	RoleParent  UserRole = "parent"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// ParseRole normalises free-text role input. The second value reports whether it is known.
func ParseRole(raw string) (UserRole, bool) {
	role := UserRole(strings.ToLower(strings.TrimSpace(raw)))
	switch role {
	case RoleParent, RoleTeacher, RoleStudent:
		return role, true
	default:
		return role, false
	}
}

// User represents an application user stored in the users table.
type User struct {
	ID           string    `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Info strips credentials for responses.
func (u User) Info() UserInfo {
	return UserInfo{
		ID:        u.ID,
		Name:      u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		IsTeacher: u.Role == RoleTeacher,
	}
}

// UserInfo describes a user in responses and roster listings.
type UserInfo struct {
	ID        string   `db:"id" json:"id"`
	Name      string   `db:"full_name" json:"name"`
	Email     string   `db:"email" json:"email"`
	Role      UserRole `db:"role" json:"role"`
	IsTeacher bool     `db:"-" json:"isTeacher"`
}
