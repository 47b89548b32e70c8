// Package auth implements the demo account system: a flat user list and a
// single current-username session pointer. Passwords are stored in plain
// text on purpose; this mirrors a front-end-only demo store and must never
// be treated as real authentication.
package auth

import (
	"errors"
	"sync"

	"github.com/andreasstove999/pet-pantry-go/internal/storage"
)

const (
	usersKey       = "petpantry-users"
	currentUserKey = "petpantry-current-user"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Store struct {
	mu sync.Mutex
	gw *storage.Gateway
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{gw: gw}
}

// Register appends a new user and logs them in. A duplicate username is
// rejected without touching the stored list.
func (s *Store) Register(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	for _, u := range users {
		if u.Username == username {
			return ErrUsernameTaken
		}
	}

	users = append(users, User{Username: username, Password: password})
	s.gw.Write(usersKey, users)
	s.gw.WriteString(currentUserKey, username)
	return nil
}

// Login sets the session pointer after a linear lookup and plain
// password comparison.
func (s *Store) Login(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.loadUsers() {
		if u.Username == username && u.Password == password {
			s.gw.WriteString(currentUserKey, username)
			return nil
		}
	}
	return ErrInvalidCredentials
}

// Logout clears the session pointer.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gw.Remove(currentUserKey)
}

// CurrentUser returns the logged-in username, if any.
func (s *Store) CurrentUser() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gw.ReadString(currentUserKey)
}

// Users returns the stored user records.
func (s *Store) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUsers()
}

func (s *Store) loadUsers() []User {
	var users []User
	s.gw.Read(usersKey, &users)
	return users
}
