package submission

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

func TestHTTPProcessingClientPostsPerKind(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody models.Fields
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Receipt{ReferenceID: "TVS-TR-11223344"})
	}))
	defer server.Close()

	client := NewHTTPProcessingClient(server.URL)
	receipt, err := client.Process(context.Background(), models.KindTestRide, models.Fields{"name": "Asha Rao"})
	require.NoError(t, err)

	assert.Equal(t, "/api/test-ride", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Asha Rao", gotBody["name"])
	assert.Equal(t, "TVS-TR-11223344", receipt.ReferenceID)
}

func TestHTTPProcessingClientRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHTTPProcessingClient(server.URL)
	_, err := client.Process(context.Background(), models.KindSuggestion, models.Fields{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestHTTPProcessingClientToleratesEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewHTTPProcessingClient(server.URL)
	receipt, err := client.Process(context.Background(), models.KindSuggestion, models.Fields{})
	require.NoError(t, err)
	assert.Empty(t, receipt.ReferenceID)
}

func TestHTTPProcessingClientUnreachable(t *testing.T) {
	client := NewHTTPProcessingClient("http://127.0.0.1:1")
	_, err := client.Process(context.Background(), models.KindSuggestion, models.Fields{})
	assert.Error(t, err)
}
