package judge

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/algocode/backend/standings"
)

// Client implements standings.Source against an ejudge-style judge.
// Fetched run logs are cached for a short interval and concurrent loads
// of the same contest are collapsed into one judge request.
type Client struct {
	registry *Registry
	httpc    *http.Client
	cache    *cache.Cache
	sfGroup  singleflight.Group
}

func NewClient(registry *Registry) *Client {
	return &Client{
		registry: registry,
		httpc:    &http.Client{Timeout: 30 * time.Second},
		cache:    cache.New(30*time.Second, 1*time.Minute),
	}
}

// LoadContest implements standings.Source. Contests absent from the
// registry yield standings.ErrNoJudge. The returned table holds every
// user the judge knows about; per-request participant filtering is the
// aggregator's job.
func (c *Client) LoadContest(ctx context.Context, contestID int64, userIDs []int64) (*standings.Table, error) {
	conf, ok := c.registry.Lookup(contestID)
	if !ok {
		return nil, standings.ErrNoJudge
	}

	key := fmt.Sprintf("contest-%d", contestID)
	if cached, found := c.cache.Get(key); found {
		return cached.(*standings.Table), nil
	}

	result, err, _ := c.sfGroup.Do(key, func() (interface{}, error) {
		table, err := c.fetch(ctx, conf)
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, table, cache.DefaultExpiration)
		return table, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*standings.Table), nil
}

func (c *Client) fetch(ctx context.Context, conf ContestConf) (*standings.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, conf.StandingsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build judge request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch run log for contest %d: %w", conf.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("judge returned status %d for contest %d", resp.StatusCode, conf.ID)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read run log: %w", err)
	}

	table, err := parseRunLog(conf.ID, data)
	if err != nil {
		return nil, err
	}
	if table.Name == "" {
		table.Name = conf.Name
	}
	return table, nil
}
