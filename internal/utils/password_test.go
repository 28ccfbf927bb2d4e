package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "argon2id$"))
	assert.NotContains(t, hash, "secret")

	// Salted: hashing twice must not produce the same string.
	other, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(hash, "secret"))
	assert.Error(t, VerifyPassword(hash, "wrong"))
	assert.Error(t, VerifyPassword("not-a-hash", "secret"))
}
