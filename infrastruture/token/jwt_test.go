package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func randomSecret(t *testing.T) string {
	t.Helper()

	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtService(t *testing.T) {
	svc := NewJwtService(randomSecret(t), "maze-solver-api")

	t.Run("round trip keeps claims and stamps the issuer", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{
			"username": "alice_01",
		}, 5*time.Minute)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		require.Equal(t, "alice_01", claims["username"])
		require.Equal(t, "maze-solver-api", claims["iss"])
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.Decode("not.a.token")
		require.Error(t, err)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		token, err := svc.Generate(nil, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		require.Error(t, err)
	})

	t.Run("rejects tokens signed with another key", func(t *testing.T) {
		other := NewJwtService(randomSecret(t), "maze-solver-api")
		token, err := other.Generate(nil, 5*time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		require.Error(t, err)
	})

	t.Run("rejects tokens from another issuer", func(t *testing.T) {
		secret := randomSecret(t)
		ours := NewJwtService(secret, "maze-solver-api")
		theirs := NewJwtService(secret, "someone-else")

		token, err := theirs.Generate(nil, 5*time.Minute)
		require.NoError(t, err)

		_, err = ours.Decode(token)
		require.ErrorIs(t, err, errWrongIssuer)
	})
}
