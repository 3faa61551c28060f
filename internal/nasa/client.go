package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RoverFetcher defines the interface for fetching rover data through the
// proxy. This interface is implemented by *Client and can be used for testing.
type RoverFetcher interface {
	FetchRovers(ctx context.Context) ([]Rover, error)
	FetchPhotos(ctx context.Context, rover, maxDate string) (Gallery, error)
}

// Ensure Client implements RoverFetcher at compile time.
var _ RoverFetcher = (*Client)(nil)

// Client talks to the roverwatch proxy HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIServer = "127.0.0.1:3000"
	defaultUserAgent = "roverwatch/0.1"
	requestTimeout   = 15 * time.Second
)

// NewClient builds a Client using the provided api_server host:port value.
func NewClient(apiServer string) (*Client, error) {
	base, err := parseBaseURL(apiServer)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchRovers retrieves the list of rover missions.
func (c *Client) FetchRovers(ctx context.Context) ([]Rover, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload RoverListResponse
	if err := c.do(ctx, http.MethodGet, "/rovers", &payload); err != nil {
		return nil, err
	}
	return payload.Rovers, nil
}

// FetchPhotos retrieves the photo gallery for one rover, bounded by the most
// recent earth date the mission has photos for.
func (c *Client) FetchPhotos(ctx context.Context, rover, maxDate string) (Gallery, error) {
	if c == nil {
		return Gallery{}, fmt.Errorf("client is nil")
	}
	name := strings.TrimSpace(rover)
	if name == "" {
		return Gallery{}, fmt.Errorf("rover name required")
	}
	values := url.Values{}
	if date := strings.TrimSpace(maxDate); date != "" {
		values.Set("max_date", date)
	}
	rel := &url.URL{Path: "/rovers/" + name, RawQuery: values.Encode()}
	var payload Gallery
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return Gallery{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
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
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiServer string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiServer)
	if trimmed == "" {
		trimmed = defaultAPIServer
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_server %q: %w", apiServer, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
