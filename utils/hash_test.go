package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	ok, err := VerifyPassword("secret123", hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmptyCredentialRejected(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyCredential)

	// Keduanya kosong maupun salah satunya: input error, bukan mismatch.
	_, err = VerifyPassword("", "")
	assert.ErrorIs(t, err, ErrEmptyCredential)

	hashed, err := HashPassword("secret123")
	require.NoError(t, err)

	_, err = VerifyPassword("", hashed)
	assert.ErrorIs(t, err, ErrEmptyCredential)

	_, err = VerifyPassword("secret123", "")
	assert.ErrorIs(t, err, ErrEmptyCredential)
}
