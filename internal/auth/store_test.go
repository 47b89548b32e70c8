package auth

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/pet-pantry-go/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	gw := storage.NewGateway(storage.NewMemory(), log.New(io.Discard, "", 0))
	return NewStore(gw)
}

func TestRegisterLogsUserIn(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Register("alice", "secret"))

	user, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", user)
}

func TestRegisterDuplicateLeavesListUntouched(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Register("alice", "secret"))
	err := s.Register("alice", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "secret", users[0].Password)
}

func TestLogin(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Register("alice", "secret"))
	s.Logout()

	assert.ErrorIs(t, s.Login("alice", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, s.Login("bob", "secret"), ErrInvalidCredentials)

	_, ok := s.CurrentUser()
	assert.False(t, ok)

	require.NoError(t, s.Login("alice", "secret"))
	user, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", user)
}

func TestLogoutClearsSession(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Register("alice", "secret"))

	s.Logout()

	_, ok := s.CurrentUser()
	assert.False(t, ok)
}
