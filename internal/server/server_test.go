// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/joshua-lossner/lossner-term/internal/assistant"
	"github.com/joshua-lossner/lossner-term/internal/content"
	"github.com/joshua-lossner/lossner-term/internal/speech"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires the API onto the offline content service and a
// local-only assistant, matching the unconfigured deployment.
func newTestServer() *Server {
	return New(content.NewService(nil), assistant.New(nil), nil)
}

func doJSON(t *testing.T, s *Server, method, target, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response is not a JSON object: %v\nbody: %s", err, w.Body.String())
	}
	return w, decoded
}

func TestHealth(t *testing.T) {
	w, body := doJSON(t, newTestServer(), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if string(body["status"]) != `"ok"` {
		t.Errorf("status field = %s", body["status"])
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer()

	w, _ := doJSON(t, s, http.MethodGet, "/health", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("response must carry a request ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", strings.NewReader(""))
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("inbound request ID not honored, got %q", got)
	}
}

func TestContent_Directories(t *testing.T) {
	w, body := doJSON(t, newTestServer(), http.MethodGet, "/api/content", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var dirs []content.Directory
	if err := json.Unmarshal(body["directories"], &dirs); err != nil {
		t.Fatalf("directories field: %v", err)
	}
	if len(dirs) != len(content.Directories) {
		t.Errorf("got %d directories, want %d", len(dirs), len(content.Directories))
	}
}

func TestContent_DirectoryListing(t *testing.T) {
	w, body := doJSON(t, newTestServer(), http.MethodGet, "/api/content?directory=Experience", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var items []content.Item
	if err := json.Unmarshal(body["files"], &items); err != nil {
		t.Fatalf("files field: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("no items returned")
	}
	if items[0].Title != "DevOps Engineer" {
		t.Errorf("first item = %q", items[0].Title)
	}
}

func TestContent_SingleFile(t *testing.T) {
	w, body := doJSON(t, newTestServer(), http.MethodGet,
		"/api/content?directory=About&file=about.md", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var f content.File
	raw, _ := json.Marshal(map[string]json.RawMessage(body))
	if err := json.Unmarshal(raw, &f); err != nil {
		t.Fatalf("file payload: %v", err)
	}
	if f.Filename != "about.md" {
		t.Errorf("filename = %q", f.Filename)
	}
	if f.Content == "" {
		t.Error("content is empty")
	}
}

func TestChat_LocalReply(t *testing.T) {
	w, body := doJSON(t, newTestServer(), http.MethodPost, "/api/chat",
		`{"message": "tell me about your career"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var reply string
	if err := json.Unmarshal(body["response"], &reply); err != nil {
		t.Fatalf("response field: %v", err)
	}
	if reply == "" {
		t.Error("empty reply")
	}
}

func TestChat_MissingMessage(t *testing.T) {
	for _, payload := range []string{``, `{}`, `{"message": ""}`, `not json`} {
		w, body := doJSON(t, newTestServer(), http.MethodPost, "/api/chat", payload)
		if w.Code != http.StatusBadRequest {
			t.Errorf("payload %q: status = %d, want 400", payload, w.Code)
		}
		if string(body["error"]) != `"Message is required"` {
			t.Errorf("payload %q: error = %s", payload, body["error"])
		}
	}
}

func TestChat_UnauthorizedKey(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "bad key"}}`))
	}))
	defer upstream.Close()

	alex := assistant.New(assistant.NewClient(&assistant.ClientConfig{
		BaseURL: upstream.URL,
		APIKey:  "sk-bad",
	}))
	s := New(content.NewService(nil), alex, nil)

	w, body := doJSON(t, s, http.MethodPost, "/api/chat", `{"message": "hi"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(string(body["error"]), "Invalid API key") {
		t.Errorf("error = %s", body["error"])
	}
}

func TestSpeech_NotConfigured(t *testing.T) {
	w, body := doJSON(t, newTestServer(), http.MethodPost, "/api/speech",
		`{"text": "hello"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if string(body["error"]) != `"Speech synthesis not configured"` {
		t.Errorf("error = %s", body["error"])
	}
}

func TestSpeech_MissingText(t *testing.T) {
	w, body := doJSON(t, newTestServer(), http.MethodPost, "/api/speech", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if string(body["error"]) != `"Text is required"` {
		t.Errorf("error = %s", body["error"])
	}
}

func TestSpeech_DataURI(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mp3-bytes"))
	}))
	defer upstream.Close()

	voice := speech.NewClient(&speech.ClientConfig{BaseURL: upstream.URL, APIKey: "xi-test"})
	s := New(content.NewService(nil), assistant.New(nil), voice)

	w, body := doJSON(t, s, http.MethodPost, "/api/speech", `{"text": "hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(string(body["audioUrl"]), "data:audio/mpeg;base64,") {
		t.Errorf("audioUrl = %s", body["audioUrl"])
	}
}
