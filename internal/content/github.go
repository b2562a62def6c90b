// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content fetches resume sections from a GitHub repository of
// markdown files and shapes them for display.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the GitHub content client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeAccessDenied
	ErrTypeTimeout
	ErrTypeConnection
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	// ErrAccessDenied covers the two statuses that trigger the static
	// fallback: 403 (missing or insufficient token) and 404 (repo or
	// path not found). Anything else is a real failure.
	ErrAccessDenied = &ClientError{Type: ErrTypeAccessDenied, Message: "content repository denied access"}
	ErrTimeout      = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// IsAccessDenied checks if an error should trigger the static fallback.
func IsAccessDenied(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeAccessDenied
	}
	return errors.Is(err, ErrAccessDenied)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the GitHub content client.
type ClientConfig struct {
	// BaseURL is the GitHub API base URL (default: https://api.github.com)
	BaseURL string

	// Owner is the repository owner.
	Owner string

	// Repo is the repository holding the content tree.
	Repo string

	// Root is the path prefix inside the repository (default: "content")
	Root string

	// Token is the optional access token sent as a Bearer credential.
	// Required for private repositories.
	Token string

	// UserAgent identifies this client to the API (default: "lossner-term")
	UserAgent string

	// Timeout for requests (default: 15s)
	Timeout time.Duration

	// RequestsPerSecond caps the request rate. Listing a section fires one
	// request per file, so this keeps a large directory from burning the
	// unauthenticated quota (default: 8).
	RequestsPerSecond float64
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           "https://api.github.com",
		Root:              "content",
		UserAgent:         "lossner-term",
		Timeout:           15 * time.Second,
		RequestsPerSecond: 8,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Entry is one item of a GitHub Contents API listing.
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Client handles communication with the GitHub Contents API.
//
// The Client is thread-safe for concurrent use.
//
// Example:
//
//	client := content.NewClient(&content.ClientConfig{Owner: "joshua-lossner", Repo: "resume-content"})
//	entries, err := client.ListDir(ctx, "Experience")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new GitHub content client.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "https://api.github.com"
	}
	if config.Root == "" {
		config.Root = "content"
	}
	if config.UserAgent == "" {
		config.UserAgent = "lossner-term"
	}
	if config.Timeout == 0 {
		config.Timeout = 15 * time.Second
	}
	if config.RequestsPerSecond == 0 {
		config.RequestsPerSecond = 8
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), int(config.RequestsPerSecond)),
	}
}

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// contentsURL builds the Contents API URL for a path under the content root.
func (c *Client) contentsURL(path string) string {
	u := c.config.BaseURL + "/repos/" + c.config.Owner + "/" + c.config.Repo + "/contents/" + c.config.Root
	if path != "" {
		u += "/" + strings.Trim(path, "/")
	}
	return u
}

// get performs a rate-limited GET with the standard headers applied.
func (c *Client) get(ctx context.Context, url string, accept string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &ClientError{Type: ErrTypeTimeout, Message: "rate limiter wait aborted", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, &ClientError{Type: ErrTypeConnection, Message: "content repository unreachable", Cause: err}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp, nil
	case http.StatusForbidden, http.StatusNotFound:
		drainAndClose(resp.Body)
		return nil, ErrAccessDenied
	default:
		drainAndClose(resp.Body)
		return nil, &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "unexpected status from content repository: " + resp.Status,
		}
	}
}

// =============================================================================
// CONTENTS OPERATIONS
// =============================================================================

// ListDir lists the entries of a directory under the content root.
func (c *Client) ListDir(ctx context.Context, dir string) ([]Entry, error) {
	resp, err := c.get(ctx, c.contentsURL(dir), "application/vnd.github+json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode directory listing", Cause: err}
	}
	return entries, nil
}

// Stat fetches the metadata entry for a single file under the content root.
// The Contents API returns an object rather than an array for file paths.
func (c *Client) Stat(ctx context.Context, path string) (*Entry, error) {
	resp, err := c.get(ctx, c.contentsURL(path), "application/vnd.github+json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entry Entry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode file metadata", Cause: err}
	}
	if entry.DownloadURL == "" {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "file metadata has no download URL: " + path}
	}
	return &entry, nil
}

// Download fetches the raw body behind an entry's download URL.
func (c *Client) Download(ctx context.Context, url string) (string, error) {
	resp, err := c.get(ctx, url, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to read file body", Cause: err}
	}
	return string(body), nil
}

// Helper to drain response body
func drainAndClose(r io.ReadCloser) {
	io.Copy(io.Discard, r)
	r.Close()
}
