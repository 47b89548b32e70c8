// Package contact stores messages submitted through the contact form.
// Messages only ever accumulate locally; nothing is sent anywhere.
package contact

import (
	"errors"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andreasstove999/pet-pantry-go/internal/storage"
)

const contactKey = "petpantry-contact-messages"

var ErrInvalidMessage = errors.New("invalid contact message")

type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store struct {
	mu  sync.Mutex
	gw  *storage.Gateway
	now func() time.Time
}

func NewStore(gw *storage.Gateway) *Store {
	return &Store{gw: gw, now: time.Now}
}

// Add validates and appends a message.
func (s *Store) Add(name, email, body string) (Message, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	body = strings.TrimSpace(body)

	if name == "" || body == "" {
		return Message{}, ErrInvalidMessage
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Message{}, ErrInvalidMessage
	}

	m := Message{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Body:      body,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.load()
	msgs = append(msgs, m)
	s.gw.Write(contactKey, msgs)
	return m, nil
}

// List returns all stored messages in submission order.
func (s *Store) List() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() []Message {
	var msgs []Message
	s.gw.Read(contactKey, &msgs)
	return msgs
}
