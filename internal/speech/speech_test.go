// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package speech synthesizes spoken audio for Alex's replies.
package speech

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&ClientConfig{BaseURL: srv.URL, APIKey: "test-key", VoiceID: "voice123"})
}

func TestSynthesize_DataURI(t *testing.T) {
	audio := []byte{0xFF, 0xFB, 0x90, 0x00, 0x01, 0x02}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text-to-speech/voice123" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if key := r.Header.Get("xi-api-key"); key != "test-key" {
			t.Errorf("xi-api-key = %q", key)
		}
		if accept := r.Header.Get("Accept"); accept != "audio/mpeg" {
			t.Errorf("Accept = %q", accept)
		}

		var req synthesizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Text != "hello world" {
			t.Errorf("text = %q", req.Text)
		}
		if req.ModelID != "eleven_monolingual_v1" {
			t.Errorf("model = %q", req.ModelID)
		}
		if !req.VoiceSettings.UseSpeakerBoost || req.VoiceSettings.Stability != 0.5 {
			t.Errorf("voice settings = %+v", req.VoiceSettings)
		}

		w.Write(audio)
	})

	uri, err := c.Synthesize(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	const prefix = "data:audio/mpeg;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("uri = %q", uri)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	if string(decoded) != string(audio) {
		t.Errorf("audio round-trip mismatch")
	}
}

func TestSynthesize_NotConfigured(t *testing.T) {
	c := NewClient(&ClientConfig{})
	_, err := c.Synthesize(context.Background(), "hello")
	if !IsNotConfigured(err) {
		t.Fatalf("want not-configured, got %v", err)
	}

	var nilClient *Client
	if nilClient.Configured() {
		t.Error("nil client must report unconfigured")
	}
}

func TestSynthesize_ServerFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Synthesize(context.Background(), "hello")
	if err == nil {
		t.Fatal("synthesis failure must error")
	}
	if IsNotConfigured(err) {
		t.Errorf("failure misclassified as not-configured: %v", err)
	}
}
