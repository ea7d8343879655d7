//go:build unit
// +build unit

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pandamaske/biibii-sub002/internal/api/rest/v1"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LiveData(t *testing.T) {
	babyID := uuid.NewString()
	userID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, v1.BasePath+"/live-data", r.URL.Path)
		assert.Equal(t, babyID, r.URL.Query().Get("babyId"))
		assert.Equal(t, "Europe/Berlin", r.URL.Query().Get("tz"))
		assert.Equal(t, userID, r.Header.Get(v1.ActorHeader))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v1.LiveDataResponse{
			Baby:     v1.BabyResponse{ID: babyID, Name: "Mia"},
			TimeZone: "Europe/Berlin",
			Today:    v1.DailySummaryResponse{Date: "2026-04-01", Feedings: 3},
		})
	}))
	defer server.Close()

	c := New(server.URL+"/", WithUserID(userID))
	snapshot, err := c.LiveData(context.Background(), babyID, "Europe/Berlin")

	require.NoError(t, err)
	assert.Equal(t, "Mia", snapshot.Baby.Name)
	assert.Equal(t, 3, snapshot.Today.Feedings)
}

func TestClient_Babies(t *testing.T) {
	userID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, v1.BasePath+"/babies", r.URL.Path)
		assert.Equal(t, userID, r.URL.Query().Get("userId"))
		assert.Empty(t, r.Header.Get(v1.ActorHeader))
		_ = json.NewEncoder(w).Encode([]v1.BabyResponse{{ID: uuid.NewString(), Name: "Mia"}, {ID: uuid.NewString(), Name: "Noah"}})
	}))
	defer server.Close()

	babies, err := New(server.URL).Babies(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, babies, 2)
	assert.Equal(t, "Noah", babies[1].Name)
}

func TestClient_APIErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		message  string
		notFound bool
	}{
		{"json error body", http.StatusNotFound, `{"error":"baby with id x not found"}`, "baby with id x not found", true},
		{"plain text body", http.StatusBadGateway, "upstream down", "upstream down", false},
		{"empty body", http.StatusServiceUnavailable, "", "Service Unavailable", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := New(server.URL).Baby(context.Background(), "x")

			require.Error(t, err)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.notFound, IsNotFound(err))
		})
	}
}

func TestClient_HonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(server.URL).LiveData(ctx, uuid.NewString(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
