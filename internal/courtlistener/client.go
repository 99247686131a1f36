package courtlistener

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"
)

// Searcher defines the interface for running searches against the API.
// This interface is implemented by *Client and can be used for testing.
type Searcher interface {
	Search(ctx context.Context, query SearchQuery) (SearchResponse, error)
	RecentOpinions(ctx context.Context, query SearchQuery) (SearchResponse, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// Client talks to the CourtListener REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	token     string
	userAgent string

	mu         sync.Mutex
	courtNames map[string]string
}

const (
	// DefaultBaseURL is the production v4 API root.
	DefaultBaseURL = "https://www.courtlistener.com/api/rest/v4"

	defaultUserAgent = "docket/0.2"
	requestTimeout   = 15 * time.Second
)

// NewClient builds a Client for the given API base URL and credential. The
// token is attached to every request; an empty base falls back to the
// production endpoint.
func NewClient(apiBase, token string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		token:      token,
		userAgent:  defaultUserAgent,
		courtNames: make(map[string]string),
	}, nil
}

// SiteURL returns the scheme://host the API lives on, used to compose
// absolute links from the relative URLs the API returns.
func (c *Client) SiteURL() string {
	site := *c.baseURL
	site.Path = ""
	return site.String()
}

// Search runs a free-text search against /search/ and returns the first
// page of results in API order.
func (c *Client) Search(ctx context.Context, query SearchQuery) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, fmt.Errorf("client is nil")
	}
	if err := query.Validate(); err != nil {
		return SearchResponse{}, err
	}
	return c.fetch(ctx, "search", query.Values())
}

// RecentOpinions fetches opinions filed today, or within the query's date
// range when one is set. The query's free text is ignored.
func (c *Client) RecentOpinions(ctx context.Context, query SearchQuery) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, fmt.Errorf("client is nil")
	}
	if err := query.ValidateDates(); err != nil {
		return SearchResponse{}, err
	}
	today := time.Now().Format(dateLayout)
	return c.fetch(ctx, "opinions", query.recentValues(today))
}

// ResolveCourtName turns a court reference into a display name. References
// already in plain-name form pass through; /api/... URLs are fetched once
// and cached for the life of the process. Lookup failures fall back to the
// slug embedded in the reference.
func (c *Client) ResolveCourtName(ctx context.Context, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "Unknown Court"
	}
	if !strings.HasPrefix(ref, "/api/") {
		return ref
	}

	c.mu.Lock()
	if name, ok := c.courtNames[ref]; ok {
		c.mu.Unlock()
		return name
	}
	c.mu.Unlock()

	name := c.fetchCourtName(ctx, ref)
	c.mu.Lock()
	c.courtNames[ref] = name
	c.mu.Unlock()
	return name
}

func (c *Client) fetchCourtName(ctx context.Context, ref string) string {
	fallback := courtSlugFromRef(ref)

	reqURL := *c.baseURL
	reqURL.Path = ref
	reqURL.RawQuery = ""

	var payload courtRef
	if err := c.get(ctx, reqURL, ref, &payload); err != nil {
		return fallback
	}
	if strings.TrimSpace(payload.Name) == "" {
		return fallback
	}
	return payload.Name
}

func (c *Client) fetch(ctx context.Context, endpoint string, values url.Values) (SearchResponse, error) {
	reqURL := *c.baseURL
	reqURL.Path = path.Join(c.baseURL.Path, endpoint) + "/"
	reqURL.RawQuery = values.Encode()

	var payload SearchResponse
	if err := c.get(ctx, reqURL, endpoint, &payload); err != nil {
		return SearchResponse{}, err
	}
	if err := validateResults(payload.Results); err != nil {
		return SearchResponse{}, DecodeError{Endpoint: endpoint, Err: err}
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, reqURL url.URL, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return RequestError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return DecodeError{Endpoint: endpoint, Err: err}
	}
	return nil
}

func courtSlugFromRef(ref string) string {
	parts := strings.Split(strings.Trim(ref, "/"), "/")
	if len(parts) == 0 {
		return ref
	}
	return parts[len(parts)-1]
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", apiBase, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
