package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListReviews(t *testing.T) {
	router := newTestRouter(t, stubFetcher{products: testProducts()})

	rec := doJSON(t, router, http.MethodPost, "/api/reviews",
		`{"name":"Alice","pet":"dog","rating":5,"text":"Our lab loves it."}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/reviews",
		`{"name":"Bob","pet":"cat","rating":3,"text":"Decent."}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/reviews", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Reviews []struct {
			Name     string `json:"name"`
			PetLabel string `json:"petLabel"`
		} `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Reviews, 2)
	assert.Equal(t, "Bob", resp.Reviews[0].Name)
	assert.Equal(t, "Cat parent", resp.Reviews[0].PetLabel)
}

func TestCreateReviewValidation(t *testing.T) {
	router := newTestRouter(t, stubFetcher{products: testProducts()})

	rec := doJSON(t, router, http.MethodPost, "/api/reviews",
		`{"name":"","pet":"dog","rating":5,"text":"hi"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/reviews",
		`{"name":"Alice","pet":"dog","rating":9,"text":"hi"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestReviewSummary(t *testing.T) {
	router := newTestRouter(t, stubFetcher{products: testProducts()})

	doJSON(t, router, http.MethodPost, "/api/reviews", `{"name":"A","pet":"dog","rating":5,"text":"x"}`)
	doJSON(t, router, http.MethodPost, "/api/reviews", `{"name":"B","pet":"dog","rating":3,"text":"x"}`)

	rec := doJSON(t, router, http.MethodGet, "/api/reviews/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total   int     `json:"total"`
		Average float64 `json:"average"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 4.0, resp.Average)
}

func TestContactForm(t *testing.T) {
	router := newTestRouter(t, stubFetcher{products: testProducts()})

	rec := doJSON(t, router, http.MethodPost, "/api/contact",
		`{"name":"Alice","email":"alice@example.com","message":"Do you ship to Canada?"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/contact",
		`{"name":"Alice","email":"not-an-email","message":"hi"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
