package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andreasstove999/pet-pantry-go/internal/review"
)

type ReviewHandler struct {
	store *review.Store
}

func NewReviewHandler(store *review.Store) *ReviewHandler {
	return &ReviewHandler{store: store}
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"reviews": h.store.List()})
}

func (h *ReviewHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, review.Summarize(h.store.List()))
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name   string `json:"name"`
		Pet    string `json:"pet"`
		Rating int    `json:"rating"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := h.store.Add(body.Name, body.Pet, body.Rating, body.Text)
	if err != nil {
		if errors.Is(err, review.ErrInvalidReview) {
			writeError(w, http.StatusUnprocessableEntity, "name, text, and a rating from 1 to 5 are required")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save review")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
