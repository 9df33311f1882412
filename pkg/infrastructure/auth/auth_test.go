package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenManager(t *testing.T) {
	manager := NewTokenManager([]byte("test-secret"), 7*24*time.Hour)

	token, err := manager.Issue(42)
	require.NoError(t, err)

	userID, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	other := NewTokenManager([]byte("other-secret"), time.Hour)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = manager.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerExpiry(t *testing.T) {
	manager := NewTokenManager([]byte("test-secret"), time.Hour)
	issued := time.Now()
	manager.now = func() time.Time { return issued }

	token, err := manager.Issue(1)
	require.NoError(t, err)

	manager.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = manager.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPasswordManager(t *testing.T) {
	manager := NewPasswordManager(bcrypt.MinCost)

	hash, err := manager.Hash("jane123")
	require.NoError(t, err)
	assert.NotEqual(t, "jane123", hash)

	ok, err := manager.Check(hash, "jane123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = manager.Check(hash, "john123")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = manager.Check("not-a-hash", "jane123")
	assert.Error(t, err)
}
