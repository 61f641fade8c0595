package myshows

import (
	"context"
	"encoding/json"
)

// API defines the interface for myshows operations. The MCP tool layer
// depends on this interface rather than the concrete Client.
type API interface {
	// TestConnection performs the login exchange eagerly
	TestConnection(ctx context.Context) error

	// SearchShows searches the catalog by query, optional year, and page
	SearchShows(ctx context.Context, query string, year, page int) (json.RawMessage, error)

	// GetWatchedMovies retrieves a page of watched movies
	GetWatchedMovies(ctx context.Context, page int) (json.RawMessage, error)

	// GetByID retrieves a show with episodes and season counts
	GetByID(ctx context.Context, showID int64) (json.RawMessage, error)

	// SetShowStatus sets the watch status of a show or movie
	SetShowStatus(ctx context.Context, showID int64, status WatchStatus) (json.RawMessage, error)

	// GetViewedEpisodes lists watched episodes of a show
	GetViewedEpisodes(ctx context.Context, showID int64) (json.RawMessage, error)

	// CheckEpisode marks an episode as watched
	CheckEpisode(ctx context.Context, episodeID int64) (json.RawMessage, error)

	// UncheckEpisode unmarks an episode as watched
	UncheckEpisode(ctx context.Context, episodeID int64) (json.RawMessage, error)

	// CheckEpisodes marks multiple episodes as watched concurrently
	CheckEpisodes(ctx context.Context, episodeIDs []int64) []EpisodeBatchResult

	// UncheckEpisodes unmarks multiple episodes as watched concurrently
	UncheckEpisodes(ctx context.Context, episodeIDs []int64) []EpisodeBatchResult

	// GetCalendar retrieves upcoming episodes
	GetCalendar(ctx context.Context) (json.RawMessage, error)

	// GetRecommendations retrieves show recommendations
	GetRecommendations(ctx context.Context) (json.RawMessage, error)

	// GetProfileShows lists the shows in the user's profile
	GetProfileShows(ctx context.Context) (json.RawMessage, error)
}

// Interface guard
var _ API = (*Client)(nil)
