package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"modportal/internal/shared/errors"
)

func TestGuard_Authorize_PlainSecret(t *testing.T) {
	guard := NewGuard("portal123")

	assert.NoError(t, guard.Authorize("portal123"))

	err := guard.Authorize("wrong")
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestGuard_Authorize_BcryptSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	guard := NewGuard(string(hash))

	assert.NoError(t, guard.Authorize("admin123"))
	assert.True(t, errors.IsUnauthorizedError(guard.Authorize("wrong")))
}

func TestGuard_Authorize_NoSecretConfigured(t *testing.T) {
	guard := NewGuard("")

	err := guard.Authorize("anything")
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestGuard_Authorize_EmptyProvided(t *testing.T) {
	guard := NewGuard("portal123")

	assert.True(t, errors.IsUnauthorizedError(guard.Authorize("")))
}
