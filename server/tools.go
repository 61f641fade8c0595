package server

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/s0up4200/myshows-mcp/myshows"
)

// SearchShowsArgs are the arguments for the search_shows tool.
type SearchShowsArgs struct {
	Query string `json:"query" jsonschema:"search query for shows and movies"`
	Year  int    `json:"year,omitempty" jsonschema:"optional release year filter, 0 for no filter"`
	Page  int    `json:"page,omitempty" jsonschema:"zero-based result page"`
}

// PageArgs are the arguments for paged listing tools.
type PageArgs struct {
	Page int `json:"page,omitempty" jsonschema:"zero-based result page"`
}

// ShowArgs identify a show or movie by its myshows id.
type ShowArgs struct {
	ShowID int64 `json:"show_id" jsonschema:"myshows id of the show or movie"`
}

// SetStatusArgs are the arguments for the set_show_watch_status tool.
type SetStatusArgs struct {
	ShowID int64  `json:"show_id" jsonschema:"myshows id of the show or movie"`
	Status string `json:"status" jsonschema:"watch status: watching, cancelled, later or remove"`
}

// EpisodeArgs identify a single episode.
type EpisodeArgs struct {
	EpisodeID int64 `json:"episode_id" jsonschema:"myshows id of the episode"`
}

// EpisodesArgs identify a batch of episodes.
type EpisodesArgs struct {
	EpisodeIDs []int64 `json:"episode_ids" jsonschema:"myshows ids of the episodes"`
}

// EmptyArgs is used by tools that take no arguments.
type EmptyArgs struct{}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_shows",
		Description: "Search for TV shows and movies on myshows.me by query, with optional year filter and pagination.",
	}, s.handleSearchShows)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_watched_movies",
		Description: "List the user's watched movies, most recently watched first (paged).",
	}, s.handleGetWatchedMovies)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_show_by_id",
		Description: "Fetch a show or movie by its myshows id, including episodes and season counts.",
	}, s.handleGetShowByID)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "set_show_watch_status",
		Description: "Set the watch status of a show or movie (watching, cancelled, later, remove).",
	}, s.handleSetShowStatus)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_profile_shows",
		Description: "List the shows in the user's profile with their watch status.",
	}, s.handleGetProfileShows)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_viewed_episodes",
		Description: "List the episodes of a show the user has marked as watched.",
	}, s.handleGetViewedEpisodes)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "check_episode",
		Description: "Mark an episode as watched by its id.",
	}, s.handleCheckEpisode)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "uncheck_episode",
		Description: "Unmark an episode as watched by its id.",
	}, s.handleUncheckEpisode)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "check_episodes",
		Description: "Mark multiple episodes as watched in one call; reports per-episode success.",
	}, s.handleCheckEpisodes)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "uncheck_episodes",
		Description: "Unmark multiple episodes as watched in one call; reports per-episode success.",
	}, s.handleUncheckEpisodes)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_calendar",
		Description: "Fetch the calendar of upcoming episodes for the user's shows.",
	}, s.handleGetCalendar)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_recommendations",
		Description: "Fetch show recommendations for the user.",
	}, s.handleGetRecommendations)
}

func (s *Server) handleSearchShows(ctx context.Context, req *mcp.CallToolRequest, args SearchShowsArgs) (*mcp.CallToolResult, any, error) {
	raw, err := s.api.SearchShows(ctx, args.Query, args.Year, args.Page)
	return s.result("search_shows", raw, err)
}

func (s *Server) handleGetWatchedMovies(ctx context.Context, req *mcp.CallToolRequest, args PageArgs) (*mcp.CallToolResult, any, error) {
	raw, err := s.api.GetWatchedMovies(ctx, args.Page)
	return s.result("get_watched_movies", raw, err)
}

func (s *Server) handleGetShowByID(ctx context.Context, req *mcp.CallToolRequest, args ShowArgs) (*mcp.CallToolResult, any, error) {
	raw, err := s.api.GetByID(ctx, args.ShowID)
	return s.result("get_show_by_id", raw, err)
}

func (s *Server) handleSetShowStatus(ctx context.Context, req *mcp.CallToolRequest, args SetStatusArgs) (*mcp.CallToolResult, any, error) {
	// Status is passed through unvalidated; the service owns the enum.
	raw, err := s.api.SetShowStatus(ctx, args.ShowID, myshows.WatchStatus(args.Status))
	return s.result("set_show_watch_status", raw, err)
}

func (s *Server) handleGetProfileShows(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
	raw, err := s.api.GetProfileShows(ctx)
	return s.result("get_profile_shows", raw, err)
}

func (s *Server) handleGetViewedEpisodes(ctx context.Context, req *mcp.CallToolRequest, args ShowArgs) (*mcp.CallToolResult, any, error) {
	raw, err := s.api.GetViewedEpisodes(ctx, args.ShowID)
	return s.result("get_viewed_episodes", raw, err)
}

func (s *Server) handleCheckEpisode(ctx context.Context, req *mcp.CallToolRequest, args EpisodeArgs) (*mcp.CallToolResult, any, error) {
	raw, err := s.api.CheckEpisode(ctx, args.EpisodeID)
	return s.result("check_episode", raw, err)
}

func (s *Server) handleUncheckEpisode(ctx context.Context, req *mcp.CallToolRequest, args EpisodeArgs) (*mcp.CallToolResult, any, error) {
	raw, err := s.api.UncheckEpisode(ctx, args.EpisodeID)
	return s.result("uncheck_episode", raw, err)
}

func (s *Server) handleCheckEpisodes(ctx context.Context, req *mcp.CallToolRequest, args EpisodesArgs) (*mcp.CallToolResult, any, error) {
	results := s.api.CheckEpisodes(ctx, args.EpisodeIDs)
	raw, err := json.Marshal(results)
	return s.result("check_episodes", raw, err)
}

func (s *Server) handleUncheckEpisodes(ctx context.Context, req *mcp.CallToolRequest, args EpisodesArgs) (*mcp.CallToolResult, any, error) {
	results := s.api.UncheckEpisodes(ctx, args.EpisodeIDs)
	raw, err := json.Marshal(results)
	return s.result("uncheck_episodes", raw, err)
}

func (s *Server) handleGetCalendar(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
	raw, err := s.api.GetCalendar(ctx)
	return s.result("get_calendar", raw, err)
}

func (s *Server) handleGetRecommendations(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
	raw, err := s.api.GetRecommendations(ctx)
	return s.result("get_recommendations", raw, err)
}
