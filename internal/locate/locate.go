// Package locate resolves the observer's position by IP geolocation when no
// explicit coordinates are given.
package locate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultURL is the ip-api.com JSON geolocation endpoint.
	DefaultURL = "http://ip-api.com/json"

	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 10 * time.Second

	// maxResponseBytes caps the geolocation response body.
	maxResponseBytes = 1 << 20
)

// Location is a resolved observer position.
type Location struct {
	Lat  float64
	Lon  float64
	City string
}

// Client queries the geolocation service.
type Client struct {
	client  *http.Client
	url     string
	timeout time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithURL sets a custom geolocation endpoint.
func WithURL(url string) ClientOption {
	return func(c *Client) {
		c.url = url
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a geolocation client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		url:     DefaultURL,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// apiResponse mirrors the ip-api.com JSON payload.
type apiResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
}

// Lookup resolves the caller's location from its public IP.
func (c *Client) Lookup(ctx context.Context) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Location{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("fetch geolocation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geolocation service returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Location{}, fmt.Errorf("read geolocation response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Location{}, fmt.Errorf("parse geolocation response: %w", err)
	}
	if parsed.Status != "success" {
		return Location{}, fmt.Errorf("geolocation lookup failed: %s", parsed.Message)
	}

	return Location{
		Lat:  parsed.Lat,
		Lon:  parsed.Lon,
		City: parsed.City,
	}, nil
}
