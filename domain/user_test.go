package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewUserValidation(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		wantErr  string
	}{
		{"short username", "ab", "mQ3$vZ9!pLk#Wd72", "username too short"},
		{"long username", "a_very_long_username_here", "mQ3$vZ9!pLk#Wd72", "username too long"},
		{"bad characters", "bad name!", "mQ3$vZ9!pLk#Wd72", "invalid username format"},
		{"weak password", "alice_01", "password", "weak password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(UserConfig{
				ID:            uuid.New(),
				Username:      tc.username,
				PlainPassword: tc.password,
			})
			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	user, err := NewUser(UserConfig{
		ID:            uuid.New(),
		Username:      "alice_01",
		PlainPassword: "mQ3$vZ9!pLk#Wd72",
	})
	require.NoError(t, err)

	require.True(t, user.VerifyPassword("mQ3$vZ9!pLk#Wd72"))
	require.False(t, user.VerifyPassword("something else"))
}
