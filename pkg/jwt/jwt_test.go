package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewManager("test-secret", 0, 0)
	userID := uuid.NewString()

	token, err := manager.GenerateAccessToken(userID, "leitor@example.com", "subscriber")
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "leitor@example.com", claims.Email)
	assert.Equal(t, "subscriber", claims.Role)
	assert.Equal(t, KindAccess, claims.Kind)
	assert.Equal(t, userID, claims.Subject)
}

func TestRefreshTokenCarriesOnlyIdentity(t *testing.T) {
	manager := NewManager("test-secret", 0, 0)
	userID := uuid.NewString()

	token, err := manager.GenerateRefreshToken(userID)
	require.NoError(t, err)

	claims, err := manager.ValidateRefreshToken(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
}

func TestKindsAreNotInterchangeable(t *testing.T) {
	manager := NewManager("test-secret", 0, 0)

	access, err := manager.GenerateAccessToken(uuid.NewString(), "leitor@example.com", "subscriber")
	require.NoError(t, err)
	refresh, err := manager.GenerateRefreshToken(uuid.NewString())
	require.NoError(t, err)

	_, err = manager.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongKind)

	_, err = manager.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 0, 0).GenerateAccessToken(uuid.NewString(), "", "")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 0, 0).ValidateAccessToken(token)

	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", time.Nanosecond, 0)

	token, err := manager.GenerateAccessToken(uuid.NewString(), "", "")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = manager.ValidateAccessToken(token)

	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", 0, 0)

	_, err := manager.ValidateAccessToken("not-a-token")

	assert.Error(t, err)
}
