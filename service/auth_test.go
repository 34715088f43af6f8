package service

import (
	"errors"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const strongPassword = "mQ3$vZ9!pLk#Wd72"

// fakeUserRepo keeps users in a map keyed by username.
type fakeUserRepo struct {
	users map[string]*dmn.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*dmn.User)}
}

func (r *fakeUserRepo) Save(user *dmn.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// fakeTokenizer issues a fixed token and records the claims it saw.
type fakeTokenizer struct {
	claims map[string]interface{}
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	f.claims = claims
	return "token", nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return f.claims, nil
}

func TestRegister(t *testing.T) {
	t.Run("stores a valid user", func(t *testing.T) {
		repo := newFakeUserRepo()
		auth, err := NewAuthService(repo, &fakeTokenizer{})
		require.NoError(t, err)

		require.NoError(t, auth.Register("alice_01", strongPassword))

		user, err := repo.ByUsername("alice_01")
		require.NoError(t, err)
		require.True(t, user.VerifyPassword(strongPassword))
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		repo := newFakeUserRepo()
		auth, err := NewAuthService(repo, &fakeTokenizer{})
		require.NoError(t, err)

		require.Error(t, auth.Register("alice_01", "password"))
		require.Empty(t, repo.users)
	})
}

func TestSignIn(t *testing.T) {
	repo := newFakeUserRepo()
	tokenizer := &fakeTokenizer{}
	auth, err := NewAuthService(repo, tokenizer)
	require.NoError(t, err)
	require.NoError(t, auth.Register("alice_01", strongPassword))

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := auth.SignIn("alice_01", strongPassword)
		require.NoError(t, err)
		require.Equal(t, "alice_01", user.Username)
		require.Equal(t, "token", token)
		require.Equal(t, "alice_01", tokenizer.claims["username"])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.SignIn("alice_01", "not the password")
		require.Error(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := auth.SignIn("nobody", strongPassword)
		require.Error(t, err)
	})
}
