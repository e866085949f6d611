// Package auth provides the shared-secret guards protecting the portal and
// its administrative mutations. This is a placeholder trust boundary, not a
// per-user authorization system.
package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"modportal/internal/shared/errors"
)

// Guard checks a provided secret against a single process-wide configured one.
// Secrets configured as bcrypt hashes (prefix "$2") are verified with bcrypt;
// anything else is compared in constant time.
type Guard struct {
	secret string
}

func NewGuard(secret string) *Guard {
	return &Guard{secret: secret}
}

// Authorize returns an unauthorized error when the provided secret does not
// match. Callers must perform no mutation on error.
func (g *Guard) Authorize(provided string) error {
	if g.secret == "" {
		return errors.NewUnauthorizedError("no secret configured")
	}

	if strings.HasPrefix(g.secret, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(g.secret), []byte(provided)); err != nil {
			return errors.NewUnauthorizedError("invalid secret")
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(g.secret), []byte(provided)) != 1 {
		return errors.NewUnauthorizedError("invalid secret")
	}
	return nil
}
