package myshows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchShowsEnvelope(t *testing.T) {
	ts := newTestServer(t)
	client := ts.newClient(t)

	_, err := client.SearchShows(context.Background(), "Breaking Bad", 2008, 0)
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, "2.0", req.JSONRPC)
	assert.Equal(t, "shows.GetCatalog", req.Method)
	assert.Equal(t, 63, req.ID)
	assert.Equal(t, float64(0), req.Params["page"])
	assert.Equal(t, float64(30), req.Params["pageSize"])

	search, ok := req.Params["search"].(map[string]any)
	require.True(t, ok, "search filter must be an object")
	assert.Equal(t, "Breaking Bad", search["query"])
	assert.Equal(t, float64(2008), search["year"])

	// Unset filters are transmitted as explicit nulls, not omitted.
	for _, key := range []string{"network", "genre", "country", "startYear", "endYear", "watching", "category", "status", "sort", "watchStatus", "embed", "providers", "jwProviders"} {
		val, present := search[key]
		assert.True(t, present, "filter member %q must be present", key)
		assert.Nil(t, val, "filter member %q must be null", key)
	}
}

func TestSearchShowsWithoutYear(t *testing.T) {
	ts := newTestServer(t)
	client := ts.newClient(t)

	_, err := client.SearchShows(context.Background(), "Dark", 0, 2)
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, float64(2), req.Params["page"])

	search := req.Params["search"].(map[string]any)
	assert.Equal(t, "Dark", search["query"])
	assert.Nil(t, search["year"])
}

func TestSetShowStatusEnvelope(t *testing.T) {
	ts := newTestServer(t)
	client := ts.newClient(t)

	_, err := client.SetShowStatus(context.Background(), 123, StatusWatching)
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, "manage.SetShowStatus", req.Method)
	assert.Equal(t, 5, req.ID)
	assert.Equal(t, map[string]any{"id": float64(123), "status": "watching"}, req.Params)
}

func TestSetShowStatusPassesUnknownStatusThrough(t *testing.T) {
	ts := newTestServer(t)
	client := ts.newClient(t)

	// The client does not validate status values; the service does.
	_, err := client.SetShowStatus(context.Background(), 9, WatchStatus("bogus"))
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, "bogus", req.Params["status"])
}

func TestGetByIDEnvelope(t *testing.T) {
	ts := newTestServer(t)
	client := ts.newClient(t)

	_, err := client.GetByID(context.Background(), 456)
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, "shows.GetById", req.Method)
	assert.Equal(t, 87, req.ID)
	assert.Equal(t, float64(456), req.Params["showId"])
	assert.Equal(t, true, req.Params["withEpisodes"])
	assert.Equal(t, true, req.Params["withSeasonCounts"])
}

func TestGetWatchedMoviesEnvelope(t *testing.T) {
	ts := newTestServer(t)
	client := ts.newClient(t)

	_, err := client.GetWatchedMovies(context.Background(), 3)
	require.NoError(t, err)

	req := ts.lastRequest(t)
	assert.Equal(t, "profile.WatchedMovies", req.Method)
	assert.Equal(t, 80, req.ID)
	assert.Equal(t, float64(3), req.Params["page"])
	assert.Equal(t, float64(20), req.Params["pageSize"])
	assert.Equal(t, "", req.Params["login"])
	assert.Equal(t, map[string]any{"sort": "watchedAt_desc"}, req.Params["search"])
}

func TestEpisodeEnvelopes(t *testing.T) {
	ts := newTestServer(t)
	client := ts.newClient(t)

	tests := []struct {
		name       string
		call       func() error
		wantMethod string
		wantID     int
		wantParams map[string]any
	}{
		{
			name: "check episode",
			call: func() error {
				_, err := client.CheckEpisode(context.Background(), 777)
				return err
			},
			wantMethod: "manage.CheckEpisode",
			wantID:     113,
			wantParams: map[string]any{"id": float64(777)},
		},
		{
			name: "uncheck episode",
			call: func() error {
				_, err := client.UncheckEpisode(context.Background(), 777)
				return err
			},
			wantMethod: "manage.UncheckEpisode",
			wantID:     111,
			wantParams: map[string]any{"id": float64(777)},
		},
		{
			name: "viewed episodes",
			call: func() error {
				_, err := client.GetViewedEpisodes(context.Background(), 31)
				return err
			},
			wantMethod: "profile.Episodes",
			wantID:     96,
			wantParams: map[string]any{"showId": float64(31)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			req := ts.lastRequest(t)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, tt.wantID, req.ID)
			assert.Equal(t, tt.wantParams, req.Params)
		})
	}
}

func TestListEnvelopes(t *testing.T) {
	ts := newTestServer(t)
	client := ts.newClient(t)

	t.Run("calendar", func(t *testing.T) {
		_, err := client.GetCalendar(context.Background())
		require.NoError(t, err)

		req := ts.lastRequest(t)
		assert.Equal(t, "lists.Episodes", req.Method)
		assert.Equal(t, 86, req.ID)
		assert.Equal(t, map[string]any{"list": "next"}, req.Params)
	})

	t.Run("recommendations", func(t *testing.T) {
		_, err := client.GetRecommendations(context.Background())
		require.NoError(t, err)

		req := ts.lastRequest(t)
		assert.Equal(t, "recommendation.Get", req.Method)
		assert.Equal(t, 107, req.ID)
		assert.Equal(t, map[string]any{"count": float64(10)}, req.Params)
	})

	t.Run("profile shows", func(t *testing.T) {
		_, err := client.GetProfileShows(context.Background())
		require.NoError(t, err)

		req := ts.lastRequest(t)
		assert.Equal(t, "profile.Shows", req.Method)
		assert.Equal(t, 5, req.ID)
		assert.Equal(t, map[string]any{"login": ""}, req.Params)
	})
}
