package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/room-finder/pkg/route"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/v1/route", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("from") == "X1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Invalid room ID"}`))
			return
		}
		_, _ = w.Write([]byte(`{"path":["G001","G002"],"distance":100,"directions":["Start at Main Entrance (G001)","Arrive at Reception (G002)"],"totalSteps":1,"estimatedTime":"7 seconds"}`))
	})
	mux.HandleFunc("/v1/rooms/G002/nearby", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "120", r.URL.Query().Get("max"))
		_, _ = w.Write([]byte(`[{"id":"F102","name":"Office 102","distance":50,"floor":1,"type":"office"}]`))
	})
	mux.HandleFunc("/v1/rooms", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "break room", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[{"id":"F108","name":"Break Room","floor":1,"type":"facility"}]`))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAPIClient(t *testing.T) {
	srv := testServer(t)
	client := NewAPIClient(srv.Client(), srv.URL)

	assert.True(t, client.TestConnection())

	res, err := client.Route("G001", "G002")
	require.NoError(t, err)
	assert.Equal(t, route.Path{"G001", "G002"}, res.Path)
	assert.Equal(t, "7 seconds", res.EstimatedTime)

	_, err = client.Route("X1", "G002")
	require.Error(t, err)
	assert.Equal(t, "Invalid room ID", err.Error())

	nearby, err := client.Nearby("G002", "120")
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "F102", nearby[0].ID)

	rooms, err := client.Rooms("break room")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Break Room", rooms[0].Name)

	err = client.get("/broken", &rooms)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API returned status 502")
}

func TestTestConnection_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewAPIClient(http.DefaultClient, url)
	assert.False(t, client.TestConnection())
}

func TestRenderRoute(t *testing.T) {
	res := &route.Result{
		Path:          route.Path{"G001", "G002"},
		Distance:      100,
		Directions:    []string{"Start at Main Entrance (G001)", "Arrive at Reception (G002)"},
		TotalSteps:    1,
		EstimatedTime: "7 seconds",
	}

	out := RenderRoute(res, 80)
	assert.Contains(t, out, "Start at Main Entrance (G001)")
	assert.Contains(t, out, "Arrive at Reception (G002)")
	assert.Contains(t, out, "Estimated time: 7 seconds")

	assert.Equal(t,
		"1. Start at Main Entrance (G001)\n2. Arrive at Reception (G002)\nEstimated time: 7 seconds\n",
		PlainDirections(res))
}

func TestRenderRoute_WrapsLongLines(t *testing.T) {
	long := strings.Repeat("corridor ", 20)
	res := &route.Result{Directions: []string{long}}

	out := RenderRoute(res, 40)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestRenderEmptyLists(t *testing.T) {
	assert.Contains(t, RenderNearby("G002", nil), "No rooms in range.")
	assert.Contains(t, RenderRooms(nil), "No matching rooms.")
}

func TestRun_Usage(t *testing.T) {
	srv := testServer(t)
	client := NewAPIClient(srv.Client(), srv.URL)
	cfg := &ConsoleConfig{APIBaseURL: srv.URL, Width: 80}

	assert.Error(t, run(client, cfg, []string{"G001"}, false))
	assert.Error(t, run(client, cfg, []string{"nearby"}, false))
	assert.NoError(t, run(client, cfg, []string{"G001", "G002"}, false))
	assert.NoError(t, run(client, cfg, []string{"nearby", "G002", "120"}, false))
}
