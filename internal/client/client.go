// Package client talks to the REST API: typed calls, an observable store and a
// live data poller for dashboards and the CLI.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	v1 "github.com/pandamaske/biibii-sub002/internal/api/rest/v1"
)

const defaultTimeout = 10 * time.Second

// APIError is returned for every non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client calls the v1 REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	userID     string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithUserID sends userID as the acting user on every request
func WithUserID(userID string) Option {
	return func(c *Client) { c.userID = userID }
}

// New creates a Client for the server at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + v1.BasePath,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LiveData fetches the dashboard snapshot of babyID. An empty tz means UTC.
func (c *Client) LiveData(ctx context.Context, babyID, tz string) (*v1.LiveDataResponse, error) {
	query := url.Values{"babyId": {babyID}}
	if tz != "" {
		query.Set("tz", tz)
	}

	var snapshot v1.LiveDataResponse
	if err := c.get(ctx, "/live-data", query, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Babies lists the babies of userID
func (c *Client) Babies(ctx context.Context, userID string) ([]v1.BabyResponse, error) {
	var babies []v1.BabyResponse
	if err := c.get(ctx, "/babies", url.Values{"userId": {userID}}, &babies); err != nil {
		return nil, err
	}
	return babies, nil
}

// Baby fetches a single baby
func (c *Client) Baby(ctx context.Context, id string) (*v1.BabyResponse, error) {
	var baby v1.BabyResponse
	if err := c.get(ctx, "/babies/"+url.PathEscape(id), nil, &baby); err != nil {
		return nil, err
	}
	return &baby, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userID != "" {
		req.Header.Set(v1.ActorHeader, c.userID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var errResp v1.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		errResp.Error = strings.TrimSpace(string(body))
		if errResp.Error == "" {
			errResp.Error = http.StatusText(resp.StatusCode)
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
}
