package auth

import (
	"testing"

	"folio/config"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = 4 // MinCost keeps the tests fast

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "owner-secret-1"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check_WrongPassword(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("correct-password")
	assert.NoError(t, err)

	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_Hash_Unique(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = 99

	hasher := NewBcryptHasher(cfg)
	hash, err := hasher.Hash("any-password")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("any-password", hash))
}
