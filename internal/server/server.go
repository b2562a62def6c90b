// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server exposes the portfolio over HTTP as a small JSON API,
// mirroring what the terminal UI shows: content listings, the Alex
// assistant, and speech synthesis.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joshua-lossner/lossner-term/internal/assistant"
	"github.com/joshua-lossner/lossner-term/internal/content"
	"github.com/joshua-lossner/lossner-term/internal/speech"
)

// ============================================================================
// Server
// ============================================================================

// Server bundles the services behind the HTTP API.
type Server struct {
	content *content.Service
	alex    *assistant.Assistant
	voice   *speech.Client
}

// New creates a server. voice may be nil when speech is not configured.
func New(svc *content.Service, alex *assistant.Assistant, voice *speech.Client) *Server {
	return &Server{content: svc, alex: alex, voice: voice}
}

// Router builds the gin handler.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(requestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/content", s.handleContent)
		api.POST("/chat", s.handleChat)
		api.POST("/speech", s.handleSpeech)
	}
	return r
}

// Run serves the API on addr, blocking until the listener fails.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

// ============================================================================
// Handlers
// ============================================================================

// handleContent serves three shapes depending on query parameters:
// no params lists directories, ?directory= lists its files, and
// ?directory=&file= returns one rendered file.
func (s *Server) handleContent(c *gin.Context) {
	directory := c.Query("directory")
	file := c.Query("file")

	ctx := c.Request.Context()

	switch {
	case directory != "" && file != "":
		f, err := s.content.GetFile(ctx, directory, file)
		if err != nil {
			contentError(c, err)
			return
		}
		c.JSON(http.StatusOK, f)
	case directory != "":
		items, err := s.content.ListFiles(ctx, directory)
		if err != nil {
			contentError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"files": items})
	default:
		dirs, err := s.content.ListDirectories(ctx)
		if err != nil {
			contentError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"directories": dirs})
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := s.alex.Reply(c.Request.Context(), req.Message)
	if err != nil {
		if assistant.IsUnauthorized(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key. Please check configuration."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

type speechRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSpeech(c *gin.Context) {
	var req speechRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	audioURL, err := s.voice.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		if speech.IsNotConfigured(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Speech synthesis not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to synthesize speech", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"audioUrl": audioURL})
}

func contentError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Failed to fetch content",
		"details": err.Error(),
	})
}
