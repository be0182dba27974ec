package vatsim

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"time"

	"github.com/vatscope/vatscope/internal/logging"
)

// DefaultStatusURL is the published entry point for the network data feed.
// The status document served there lists the v3 data endpoints.
const DefaultStatusURL = "https://status.vatsim.net/status.json"

const (
	defaultUserAgent = "github.com/vatscope/vatscope"
	defaultTimeout   = 10 * time.Second
)

// Fetcher defines the interface for retrieving a network snapshot.
// This interface is implemented by *Client and can be stubbed in tests.
type Fetcher interface {
	Fetch(ctx context.Context) (*Data, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the VATSIM status and data endpoints.
type Client struct {
	statusURL string
	dataURL   string
	http      *http.Client
	userAgent string
	pick      func(n int) int
}

// NewClient builds a Client using the provided status URL. An empty
// statusURL falls back to DefaultStatusURL; a non-positive timeout
// falls back to the default.
func NewClient(statusURL string, timeout time.Duration) *Client {
	if statusURL == "" {
		statusURL = DefaultStatusURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		statusURL: statusURL,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
		pick:      rand.Intn,
	}
}

// FetchStatus retrieves the status document listing the data endpoints.
func (c *Client) FetchStatus(ctx context.Context) (*Status, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	logging.Debug("requesting status document from %s", c.statusURL)
	var payload Status
	if err := c.get(ctx, c.statusURL, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Fetch retrieves the status document, follows one v3 data URL chosen
// at random, and returns the snapshot with pilots and controllers
// sorted by callsign.
func (c *Client) Fetch(ctx context.Context) (*Data, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	status, err := c.FetchStatus(ctx)
	if err != nil {
		return nil, err
	}
	if len(status.Data.V3) == 0 {
		return nil, fmt.Errorf("no v3 data URLs in status document")
	}
	c.dataURL = status.Data.V3[c.pick(len(status.Data.V3))]
	logging.Debug("data URL: %s", c.dataURL)

	var payload Data
	if err := c.get(ctx, c.dataURL, &payload); err != nil {
		return nil, err
	}
	sort.Slice(payload.Pilots, func(i, j int) bool {
		return payload.Pilots[i].Callsign < payload.Pilots[j].Callsign
	})
	sort.Slice(payload.Controllers, func(i, j int) bool {
		return payload.Controllers[i].Callsign < payload.Controllers[j].Callsign
	})
	logging.Debug("snapshot loaded: %d pilots, %d controllers",
		len(payload.Pilots), len(payload.Controllers))
	return &payload, nil
}

// DataURL returns the v3 endpoint chosen by the last Fetch call. It is
// empty before the first successful status fetch.
func (c *Client) DataURL() string {
	return c.dataURL
}

func (c *Client) get(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s returned status %d", rawURL, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
