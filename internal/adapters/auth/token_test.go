package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHS256Tokens_IssueAndVerify(t *testing.T) {
	tokens := NewHS256Tokens("test-secret")

	signed, err := tokens.Issue("ops", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	subject, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "ops", subject)
}

func TestHS256Tokens_Verify_Expired(t *testing.T) {
	tokens := NewHS256Tokens("test-secret")

	signed, err := tokens.Issue("ops", -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.Error(t, err)
}

func TestHS256Tokens_Verify_WrongSecret(t *testing.T) {
	issuer := NewHS256Tokens("secret-a")
	verifier := NewHS256Tokens("secret-b")

	signed, err := issuer.Issue("ops", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.Error(t, err)
}

func TestHS256Tokens_Verify_Garbage(t *testing.T) {
	tokens := NewHS256Tokens("test-secret")

	_, err := tokens.Verify("not-a-token")
	require.Error(t, err)
}
