package auth

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/lms-cli/internal/domain"
	"github.com/bnema/lms-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
)

// TokenGuard reads identity claims from an access token without verifying its
// signature. The server remains the authority on validity; the guard only
// detects a token that belongs to someone other than the cached user.
type TokenGuard struct {
	parser *jwt.Parser
}

var _ ports.TokenValidator = (*TokenGuard)(nil)

func NewTokenGuard() *TokenGuard {
	return &TokenGuard{parser: jwt.NewParser()}
}

func (g *TokenGuard) Claims(token string) (domain.TokenClaims, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.TokenClaims{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := g.parser.ParseUnverified(token, claims); err != nil {
		return domain.TokenClaims{}, false
	}

	out := domain.TokenClaims{
		Email:   claimString(claims["email"]),
		Subject: claimString(claims["sub"]),
		Role:    claimString(claims["role"]),
	}
	if exp, ok := claimTime(claims["exp"]); ok {
		out.ExpiresAt = exp
	}

	return out, true
}

// claimString accepts string and numeric claims.
func claimString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// claimTime reads a NumericDate given as a number or a numeric string.
func claimTime(value any) (time.Time, bool) {
	var seconds float64
	switch v := value.(type) {
	case float64:
		seconds = v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, false
		}
		seconds = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return time.Time{}, false
		}
		seconds = f
	default:
		return time.Time{}, false
	}

	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC(), true
}

// Validate reports a mismatch only when both sides carry an identity and they
// disagree. Undecodable tokens pass; expiry is left to the server.
func (g *TokenGuard) Validate(token string, user domain.User) domain.TokenCheck {
	claims, ok := g.Claims(token)
	if !ok {
		return domain.TokenCheck{}
	}

	subject := claims.Identity()
	email := strings.TrimSpace(user.Email)
	if subject == "" || email == "" {
		return domain.TokenCheck{}
	}
	if strings.EqualFold(subject, email) || subject == strings.TrimSpace(user.ID) {
		return domain.TokenCheck{}
	}

	return domain.TokenCheck{
		Mismatch: true,
		Detail:   fmt.Sprintf("token subject %q does not match signed-in user %q", subject, email),
	}
}
