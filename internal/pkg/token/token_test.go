package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasteleria/internal/pkg/token"
)

func TestNewIssuer_EmptySecret(t *testing.T) {
	_, err := token.NewIssuer("", time.Hour)
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrSecretIsRequired)
}

func TestIssuer_IssueAndParse(t *testing.T) {
	issuer, err := token.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	signed, err := issuer.Issue("8f14e45f-ceea-4c9c-b0d1-9a6f3b1f0c2d", "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := issuer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "8f14e45f-ceea-4c9c-b0d1-9a6f3b1f0c2d", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestIssuer_Parse_WrongSecret(t *testing.T) {
	issuer, err := token.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := token.NewIssuer("other-secret", time.Hour)
	require.NoError(t, err)

	signed, err := issuer.Issue("user-id", "CLIENTE")
	require.NoError(t, err)

	_, err = other.Parse(signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrTokenIsInvalid)
}

func TestIssuer_Parse_ExpiredToken(t *testing.T) {
	issuer, err := token.NewIssuer("test-secret", -time.Minute)
	require.NoError(t, err)

	signed, err := issuer.Issue("user-id", "DELIVERY")
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrTokenIsInvalid)
}

func TestIssuer_Parse_Garbage(t *testing.T) {
	issuer, err := token.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Parse("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrTokenIsInvalid)
}
