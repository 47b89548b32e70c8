package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andreasstove999/pet-pantry-go/internal/contact"
)

type ContactHandler struct {
	store *contact.Store
}

func NewContactHandler(store *contact.Store) *ContactHandler {
	return &ContactHandler{store: store}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := h.store.Add(body.Name, body.Email, body.Message)
	if err != nil {
		if errors.Is(err, contact.ErrInvalidMessage) {
			writeError(w, http.StatusUnprocessableEntity, "name, a valid email, and a message are required")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save message")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
