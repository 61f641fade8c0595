package myshows

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"
)

// episodeBatchConcurrency limits concurrent episode mutations so a large
// batch does not hammer the service.
const episodeBatchConcurrency = 5

// CheckEpisodes marks multiple episodes as watched concurrently. Individual
// failures do not abort the batch; each id gets its own result entry, in
// input order.
func (c *Client) CheckEpisodes(ctx context.Context, episodeIDs []int64) []EpisodeBatchResult {
	return c.batchEpisodes(ctx, episodeIDs, c.CheckEpisode)
}

// UncheckEpisodes unmarks multiple episodes as watched concurrently, with
// the same per-id error collection as CheckEpisodes.
func (c *Client) UncheckEpisodes(ctx context.Context, episodeIDs []int64) []EpisodeBatchResult {
	return c.batchEpisodes(ctx, episodeIDs, c.UncheckEpisode)
}

func (c *Client) batchEpisodes(ctx context.Context, episodeIDs []int64, op func(context.Context, int64) (json.RawMessage, error)) []EpisodeBatchResult {
	results := make([]EpisodeBatchResult, len(episodeIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(episodeBatchConcurrency)

	for i, id := range episodeIDs {
		g.Go(func() error {
			_, err := op(ctx, id)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Int64("episode_id", id).
					Msg("Episode batch operation failed")
				results[i] = EpisodeBatchResult{EpisodeID: id, Error: err.Error()}
			} else {
				results[i] = EpisodeBatchResult{EpisodeID: id, OK: true}
			}
			return nil // Don't stop on individual errors
		})
	}

	g.Wait()
	return results
}
