package myshows

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEpisodesCollectsPerIDFailures(t *testing.T) {
	ts := newTestServer(t)
	ts.rpcBody = func(req capturedRequest) string {
		if id, ok := req.Params["id"].(float64); ok && id == 500 {
			return `[{"jsonrpc":"2.0","error":{"code":-32000,"message":"episode not found"},"id":113}]`
		}
		return `[{"jsonrpc":"2.0","result":true,"id":113}]`
	}
	client := ts.newClient(t)

	ids := []int64{100, 500, 300}
	results := client.CheckEpisodes(context.Background(), ids)
	require.Len(t, results, 3)

	// Results come back in input order; the failing id does not abort the
	// rest of the batch.
	for i, id := range ids {
		assert.Equal(t, id, results[i].EpisodeID)
	}
	assert.True(t, results[0].OK)
	assert.False(t, results[1].OK)
	assert.Contains(t, results[1].Error, "episode not found")
	assert.True(t, results[2].OK)

	assert.Equal(t, int64(3), ts.rpcHits.Load())
	assert.Equal(t, int64(1), ts.loginHits.Load())
}

func TestUncheckEpisodes(t *testing.T) {
	ts := newTestServer(t)
	client := ts.newClient(t)

	ids := make([]int64, 20)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	results := client.UncheckEpisodes(context.Background(), ids)
	require.Len(t, results, len(ids))
	for i, res := range results {
		assert.True(t, res.OK, fmt.Sprintf("id %d should succeed", ids[i]))
		assert.Empty(t, res.Error)
	}

	// One login, one RPC per episode.
	assert.Equal(t, int64(1), ts.loginHits.Load())
	assert.Equal(t, int64(len(ids)), ts.rpcHits.Load())
}

func TestBatchEmptyInput(t *testing.T) {
	ts := newTestServer(t)
	client := ts.newClient(t)

	assert.Empty(t, client.CheckEpisodes(context.Background(), nil))
	assert.Equal(t, int64(0), ts.rpcHits.Load())
}
