package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleStudent     Role = "student"
	RoleInstructor  Role = "instructor"
	RoleBranchAdmin Role = "branch_admin"
	RoleAdmin       Role = "admin"
)

type User struct {
	ID    string
	Email string
	Role  Role
}

// Session is replaced wholesale on login and destroyed on logout or token mismatch.
type Session struct {
	AccessToken string
	User        User
}

func (s Session) HasToken() bool {
	return strings.TrimSpace(s.AccessToken) != ""
}

type TokenClaims struct {
	Email     string
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// Identity returns the email claim, falling back to sub.
func (c TokenClaims) Identity() string {
	if email := strings.TrimSpace(c.Email); email != "" {
		return email
	}

	return strings.TrimSpace(c.Subject)
}

func (c TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}

	return !c.ExpiresAt.After(now)
}

type TokenCheck struct {
	Mismatch bool
	Detail   string
}

func (c TokenCheck) OK() bool {
	return !c.Mismatch
}
