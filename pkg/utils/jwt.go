package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what we read back out of a verified admin token. Legacy
// tokens may miss email/role; callers fall back to the configured identity.
type TokenClaims struct {
	Subject string
	Email   string
	Role    string
}

// SignAdminToken builds and signs an HS256 JWT for the admin identity.
func SignAdminToken(secret, id, email, role string, expiryHours int) (string, time.Time, error) {
	if expiryHours <= 0 {
		expiryHours = 8
	}
	exp := time.Now().UTC().Add(time.Duration(expiryHours) * time.Hour)

	claims := jwt.MapClaims{
		"sub":   id,
		"email": email,
		"role":  role,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, exp, nil
}

// ParseAdminToken verifies signature and expiry and returns the claims.
// Any failure (expired, malformed, wrong signing method) returns an error;
// callers translate that to a nil identity, never a panic.
func ParseAdminToken(secret, tokenStr string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	out := &TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}

	return out, nil
}
