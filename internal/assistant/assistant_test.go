// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant implements Alex, the terminal's conversational layer.
package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// =============================================================================
// PERSONA TESTS
// =============================================================================

func TestClassify(t *testing.T) {
	testCases := []struct {
		message string
		want    []string
	}{
		{"How do I prep for an interview?", personaCategories[0].responses},
		{"what TECHNOLOGY should I use", personaCategories[1].responses},
		{"best way to learn Go", personaCategories[2].responses},
		{"got any project ideas", personaCategories[3].responses},
		{"tell me about Joshua", personaCategories[4].responses},
		{"javascript", personaDefaults},
		{"", personaDefaults},
	}

	for _, tc := range testCases {
		t.Run(tc.message, func(t *testing.T) {
			got := classify(tc.message)
			if &got[0] != &tc.want[0] {
				t.Errorf("classify(%q) picked the wrong pool: %q", tc.message, got[0])
			}
		})
	}
}

func TestCannedReply_AlwaysAnswers(t *testing.T) {
	for _, msg := range []string{"career advice?", "gibberish zzz", ""} {
		if CannedReply(msg) == "" {
			t.Errorf("CannedReply(%q) returned empty", msg)
		}
	}
}

// =============================================================================
// CLIENT TESTS
// =============================================================================

func newTestAssistant(t *testing.T, handler http.HandlerFunc) *Assistant {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(NewClient(&ClientConfig{BaseURL: srv.URL, APIKey: "test-key"}))
}

func TestReply_Live(t *testing.T) {
	a := newTestAssistant(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages = %v", req.Messages)
		}
		if req.Messages[1].Content != "hello there" {
			t.Errorf("user message = %q", req.Messages[1].Content)
		}

		json.NewEncoder(w).Encode(chatResponse{Choices: []struct {
			Message chatMessage `json:"message"`
		}{{Message: chatMessage{Role: "assistant", Content: "Hi! Alex here."}}}})
	})

	got, err := a.Reply(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("Reply failed: %v", err)
	}
	if got != "Hi! Alex here." {
		t.Errorf("Reply = %q", got)
	}
}

func TestComplete_ZeroTemperatureSent(t *testing.T) {
	var sent chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(&ClientConfig{BaseURL: srv.URL, APIKey: "test-key", Temperature: floatPtr(0)})
	if got := *c.GetConfig().Temperature; got != 0 {
		t.Fatalf("configured temperature = %v, want 0", got)
	}

	if _, err := c.Complete(context.Background(), "hello"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if sent.Temperature != 0 {
		t.Errorf("wire temperature = %v, want 0", sent.Temperature)
	}
}

func TestReply_UnauthorizedPropagates(t *testing.T) {
	a := newTestAssistant(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := a.Reply(context.Background(), "hello")
	if !IsUnauthorized(err) {
		t.Fatalf("want unauthorized error, got %v", err)
	}
}

func TestReply_ServerErrorFallsBackToPersona(t *testing.T) {
	a := newTestAssistant(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	got, err := a.Reply(context.Background(), "career advice please")
	if err != nil {
		t.Fatalf("server failure must degrade, not error: %v", err)
	}
	if !containsAny(got, personaCategories[0].responses) {
		t.Errorf("fallback reply %q not from the career pool", got)
	}
}

func TestReply_NoKeyStaysLocal(t *testing.T) {
	a := New(NewClient(&ClientConfig{BaseURL: "http://127.0.0.1:1"}))
	if a.Live() {
		t.Fatal("assistant without a key must not be live")
	}

	got, err := a.Reply(context.Background(), "any question")
	if err != nil || got == "" {
		t.Fatalf("local reply = %q, %v", got, err)
	}
}

func TestReply_EmptyChoices(t *testing.T) {
	a := newTestAssistant(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	got, err := a.Reply(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Reply failed: %v", err)
	}
	if !strings.Contains(got, "Neural link unstable") {
		t.Errorf("empty choices reply = %q", got)
	}
}

func containsAny(s string, pool []string) bool {
	for _, p := range pool {
		if s == p {
			return true
		}
	}
	return false
}
