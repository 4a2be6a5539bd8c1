package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	apperrors "movienuts/internal/errors"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotContains(t, digest, "secret1")

	ok, err := hasher.Verify("secret1", digest)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("secret2", digest)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_SaltedPerCall(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same password")
	assert.NoError(t, err)

	// Salt is randomized per call, so the digests differ but both verify.
	assert.NotEqual(t, first, second)

	ok, err := hasher.Verify("same password", first)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("same password", second)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	ok, err := hasher.Verify("anything", "not-a-bcrypt-digest")
	assert.False(t, ok)
	assert.ErrorIs(t, err, apperrors.ErrHashFormat)
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	hasher := NewPasswordHasher(999)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewPasswordHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
