// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package speech synthesizes spoken audio for Alex's replies through an
// ElevenLabs-style text-to-speech API. The result is returned as a
// base64 data URI so callers can hand it straight to whatever plays it.
package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// MaxSpokenLength is the longest reply worth synthesizing. Longer text
// is skipped rather than truncated mid-sentence.
const MaxSpokenLength = 1000

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the speech client.
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
	ErrTypeNotConfigured
	ErrTypeTimeout
	ErrTypeConnection
	ErrTypeSynthesisFailed
)

// Sentinel errors for easy checking.
var (
	ErrNotConfigured = &ClientError{Type: ErrTypeNotConfigured, Message: "speech synthesis not configured"}
	ErrTimeout       = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// IsNotConfigured checks if an error means no API key is set.
func IsNotConfigured(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeNotConfigured
	}
	return errors.Is(err, ErrNotConfigured)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the speech client.
type ClientConfig struct {
	// BaseURL is the TTS API base URL (default: https://api.elevenlabs.io/v1)
	BaseURL string

	// APIKey authenticates requests. Required; synthesis without a key
	// returns ErrNotConfigured.
	APIKey string

	// VoiceID selects the voice (default: "pNInz6obpgDQGcFmaJgB")
	VoiceID string

	// ModelID selects the synthesis model (default: "eleven_monolingual_v1")
	ModelID string

	// Timeout for requests (default: 30s)
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "https://api.elevenlabs.io/v1",
		VoiceID: "pNInz6obpgDQGcFmaJgB",
		ModelID: "eleven_monolingual_v1",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// WIRE TYPES
// =============================================================================

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the text-to-speech API.
//
// The Client is thread-safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a speech client.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "https://api.elevenlabs.io/v1"
	}
	if config.VoiceID == "" {
		config.VoiceID = "pNInz6obpgDQGcFmaJgB"
	}
	if config.ModelID == "" {
		config.ModelID = "eleven_monolingual_v1"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c != nil && c.config.APIKey != ""
}

// Synthesize turns text into an mp3 data URI (data:audio/mpeg;base64,...).
func (c *Client) Synthesize(ctx context.Context, text string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	reqBody := synthesizeRequest{
		Text:    text,
		ModelID: c.config.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.5,
			Style:           0.0,
			UseSpeakerBoost: true,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ClientError{Type: ErrTypeSynthesisFailed, Message: "failed to marshal request", Cause: err}
	}

	url := c.config.BaseURL + "/text-to-speech/" + c.config.VoiceID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", &ClientError{Type: ErrTypeConnection, Message: "speech service unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", &ClientError{
			Type:    ErrTypeSynthesisFailed,
			Message: "speech synthesis failed: " + resp.Status,
		}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ClientError{Type: ErrTypeSynthesisFailed, Message: "failed to read audio", Cause: err}
	}

	return "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audio), nil
}
