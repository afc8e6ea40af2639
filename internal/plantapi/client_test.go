package plantapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gronskott/happyplants/internal/config"
	"github.com/gronskott/happyplants/internal/models"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.PlantAPI{
		APIKey:         "test-key",
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
		RatePerSecond:  100,
		RateBurst:      100,
	})
}

func TestSearch_ParsesCatalogResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/species-list", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "aloe vera", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": 42,
					"common_name": "Aloe",
					"scientific_name": ["Aloe vera"],
					"default_image": {"thumbnail": "https://img.example.com/aloe.jpg"}
				},
				{
					"id": 43,
					"common_name": "Ficus",
					"scientific_name": []
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	plants, err := client.Search(context.Background(), "aloe vera")

	require.NoError(t, err)
	require.Len(t, plants, 2)
	assert.Equal(t, "42", plants[0].PlantID)
	assert.Equal(t, "Aloe", plants[0].CommonName)
	assert.Equal(t, "Aloe vera", plants[0].ScientificName)
	assert.Equal(t, "https://img.example.com/aloe.jpg", plants[0].ImageURL)

	assert.Equal(t, "43", plants[1].PlantID)
	assert.Empty(t, plants[1].ScientificName)
	assert.NotEmpty(t, plants[1].ImageURL, "missing image must be replaced by a default one")
}

func TestSearch_NonOKStatusFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), "aloe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestDetails_ParsesCatalogResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/species/details/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 42,
			"common_name": "Aloe",
			"scientific_name": ["Aloe vera"],
			"family": "Asphodelaceae",
			"description": "A succulent plant species.",
			"watering": "Minimum",
			"sunlight": ["full sun", "part shade"]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	details, err := client.Details(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "Asphodelaceae", details.FamilyName)
	assert.Equal(t, "Aloe vera", details.ScientificName)
	assert.Equal(t, "A succulent plant species.", details.Description)
	assert.Equal(t, "Minimum", details.RecommendedWatering)
	assert.Equal(t, []string{"full sun", "part shade"}, details.Sunlight)
}

func TestDetails_PremiumSpeciesSkipsRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	details, err := client.Details(context.Background(), "3001")

	require.NoError(t, err)
	assert.Equal(t, models.UnknownPlantDetails(), details)
	assert.Zero(t, requests, "premium species must not hit the catalog at all")
}

func TestDetails_ThresholdSpeciesIsRequested(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 3000, "family": "Araceae", "scientific_name": ["Monstera deliciosa"]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	details, err := client.Details(context.Background(), "3000")

	require.NoError(t, err)
	assert.Equal(t, "Araceae", details.FamilyName)
}
