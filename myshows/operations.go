package myshows

import (
	"context"
	"encoding/json"
)

// Per-operation request ids. The service consumes responses synchronously,
// so the values only need to be stable, not unique across operations.
const (
	idSetShowStatus  = 5
	idProfileShows   = 5
	idSearchShows    = 63
	idWatchedMovies  = 80
	idCalendar       = 86
	idGetByID        = 87
	idViewedEpisodes = 96
	idRecommendation = 107
	idUncheckEpisode = 111
	idCheckEpisode   = 113
)

// Page sizes expected by the catalog and profile endpoints.
const (
	searchPageSize  = 30
	watchedPageSize = 20
)

// SearchShows searches the catalog for shows and movies by query, with an
// optional year filter (0 means no filter) and a zero-based page.
func (c *Client) SearchShows(ctx context.Context, query string, year, page int) (json.RawMessage, error) {
	filter := searchFilter{Query: query}
	if year != 0 {
		filter.Year = &year
	}

	return c.Call(ctx, "shows.GetCatalog", idSearchShows, map[string]any{
		"search":   filter,
		"page":     page,
		"pageSize": searchPageSize,
	})
}

// GetWatchedMovies retrieves a page of the user's watched movies, most
// recently watched first.
func (c *Client) GetWatchedMovies(ctx context.Context, page int) (json.RawMessage, error) {
	return c.Call(ctx, "profile.WatchedMovies", idWatchedMovies, map[string]any{
		"page":     page,
		"pageSize": watchedPageSize,
		"login":    "",
		"search":   map[string]any{"sort": "watchedAt_desc"},
	})
}

// GetByID retrieves a show or movie by its myshows id, including episodes
// and per-season counts.
func (c *Client) GetByID(ctx context.Context, showID int64) (json.RawMessage, error) {
	return c.Call(ctx, "shows.GetById", idGetByID, map[string]any{
		"showId":           showID,
		"withEpisodes":     true,
		"withSeasonCounts": true,
	})
}

// SetShowStatus sets the watch status of a show or movie. The status string
// is passed through unvalidated; the service rejects unknown values.
func (c *Client) SetShowStatus(ctx context.Context, showID int64, status WatchStatus) (json.RawMessage, error) {
	return c.Call(ctx, "manage.SetShowStatus", idSetShowStatus, map[string]any{
		"id":     showID,
		"status": status,
	})
}

// GetViewedEpisodes lists the episodes of a show the user has marked as
// watched.
func (c *Client) GetViewedEpisodes(ctx context.Context, showID int64) (json.RawMessage, error) {
	return c.Call(ctx, "profile.Episodes", idViewedEpisodes, map[string]any{
		"showId": showID,
	})
}

// CheckEpisode marks an episode as watched by its id.
func (c *Client) CheckEpisode(ctx context.Context, episodeID int64) (json.RawMessage, error) {
	return c.Call(ctx, "manage.CheckEpisode", idCheckEpisode, map[string]any{
		"id": episodeID,
	})
}

// UncheckEpisode unmarks an episode as watched by its id.
func (c *Client) UncheckEpisode(ctx context.Context, episodeID int64) (json.RawMessage, error) {
	return c.Call(ctx, "manage.UncheckEpisode", idUncheckEpisode, map[string]any{
		"id": episodeID,
	})
}

// GetCalendar retrieves the upcoming episodes for the user's shows.
func (c *Client) GetCalendar(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "lists.Episodes", idCalendar, map[string]any{
		"list": "next",
	})
}

// GetRecommendations retrieves show recommendations for the user.
func (c *Client) GetRecommendations(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "recommendation.Get", idRecommendation, map[string]any{
		"count": 10,
	})
}

// GetProfileShows lists the shows in the user's profile with their watch
// status. An empty login selects the authenticated user.
func (c *Client) GetProfileShows(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "profile.Shows", idProfileShows, map[string]any{
		"login": "",
	})
}
