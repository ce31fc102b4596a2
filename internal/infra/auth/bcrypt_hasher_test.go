package auth

import (
	"testing"

	"aspri/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasherConfig() *config.Config {
	// Minimum cost keeps the test suite fast.
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	password := "password1"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	first, err := hasher.Hash("password1")
	require.NoError(t, err)
	second, err := hasher.Hash("password1")
	require.NoError(t, err)

	// Same plaintext, different digests across calls.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("password1", first))
	assert.True(t, hasher.Check("password1", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	hash, err := hasher.Hash("password1")
	require.NoError(t, err)

	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("", hash))

	// Malformed digests fail the match without raising an error.
	assert.False(t, hasher.Check("password1", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("password1", ""))
}

func TestBcryptHasher_DefaultCostWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("password1")
	require.NoError(t, err)
	assert.True(t, hasher.Check("password1", hash))
}
