// Package auth issues and verifies the signed portal session tokens stored
// in the session cookie.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionRole string

const (
	RoleOperator SessionRole = "operator"
	RoleAdmin    SessionRole = "admin"
)

type SessionClaims struct {
	Role SessionRole `json:"role"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

type SessionService struct {
	secret   []byte
	expHours int
}

func NewSessionService(secret string, expHours int) *SessionService {
	return &SessionService{
		secret:   []byte(secret),
		expHours: expHours,
	}
}

func (s *SessionService) Generate(role SessionRole) (string, error) {
	now := time.Now().UTC()

	claims := &SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

func (s *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	if claims.Role != RoleOperator && claims.Role != RoleAdmin {
		return nil, fmt.Errorf("unknown session role: %s", claims.Role)
	}

	return claims, nil
}
