package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndParse(t *testing.T) {
	m := NewJWTManager("test-secret-at-least-16", time.Hour)

	token, exp, err := m.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestJWTParseExpired(t *testing.T) {
	m := NewJWTManager("test-secret-at-least-16", -time.Minute)

	token, _, err := m.Generate("user-123")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestJWTParseWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret-at-least-16", time.Hour)
	other := NewJWTManager("another-secret-entirely", time.Hour)

	token, _, err := m.Generate("user-123")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTParseMalformed(t *testing.T) {
	m := NewJWTManager("test-secret-at-least-16", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Parse(tok)
		assert.Error(t, err, "token %q should not parse", tok)
	}
}
