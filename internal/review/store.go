// Package review stores customer reviews, an append-only list with a
// derived rating summary.
package review

import (
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andreasstove999/pet-pantry-go/internal/storage"
)

const reviewKey = "petpantry-reviews"

var ErrInvalidReview = errors.New("invalid review")

var petLabels = map[string]string{
	"dog":       "Dog parent",
	"cat":       "Cat parent",
	"small-pet": "Small pet parent",
}

type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pet       string    `json:"pet"`
	PetLabel  string    `json:"petLabel"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
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

// Add validates and appends a review. There is no edit or delete.
func (s *Store) Add(name, pet string, rating int, text string) (Review, error) {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)
	if name == "" || text == "" || rating < 1 || rating > 5 {
		return Review{}, ErrInvalidReview
	}

	label, ok := petLabels[pet]
	if !ok {
		label = "Pet parent"
	}

	r := Review{
		ID:        uuid.NewString(),
		Name:      name,
		Pet:       pet,
		PetLabel:  label,
		Rating:    rating,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := s.load()
	reviews = append(reviews, r)
	s.gw.Write(reviewKey, reviews)
	return r, nil
}

// List returns reviews newest first.
func (s *Store) List() []Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := s.load()
	out := make([]Review, 0, len(reviews))
	for i := len(reviews) - 1; i >= 0; i-- {
		out = append(out, reviews[i])
	}
	return out
}

func (s *Store) load() []Review {
	var reviews []Review
	s.gw.Read(reviewKey, &reviews)
	return reviews
}

// StarBucket is the share of reviews at one rating.
type StarBucket struct {
	Stars   int `json:"stars"`
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// Summary is the aggregate header shown above the review list.
type Summary struct {
	Total     int          `json:"total"`
	Average   float64      `json:"average"`
	Breakdown []StarBucket `json:"breakdown"`
}

// Summarize computes the total, the average rounded to one decimal, and
// a 5-to-1 star breakdown with whole-number percentages.
func Summarize(reviews []Review) Summary {
	s := Summary{Breakdown: make([]StarBucket, 0, 5)}
	s.Total = len(reviews)

	counts := map[int]int{}
	sum := 0
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			counts[r.Rating]++
		}
		sum += r.Rating
	}

	if s.Total > 0 {
		s.Average = math.Round(float64(sum)/float64(s.Total)*10) / 10
	}

	for stars := 5; stars >= 1; stars-- {
		b := StarBucket{Stars: stars, Count: counts[stars]}
		if s.Total > 0 {
			b.Percent = int(math.Round(float64(b.Count) / float64(s.Total) * 100))
		}
		s.Breakdown = append(s.Breakdown, b)
	}

	return s
}
