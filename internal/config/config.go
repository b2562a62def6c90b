// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// lossner-term.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"

	"github.com/joshua-lossner/lossner-term/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete lossner-term configuration.
type Config struct {
	Version string `toml:"version"`

	// Content repository settings
	Content ContentConfig `toml:"content"`

	// Assistant (Alex) settings
	Assistant AssistantConfig `toml:"assistant"`

	// Speech synthesis settings
	Speech SpeechConfig `toml:"speech"`

	// Conversation history settings
	History HistoryConfig `toml:"history"`

	// Server mode settings
	Server ServerConfig `toml:"server"`

	// UI settings
	UI UIConfig `toml:"ui"`
}

// ContentConfig points the terminal at a GitHub repository of markdown
// content. Empty owner/repo means offline mode: built-in content only.
type ContentConfig struct {
	// GitHubOwner is the repository owner
	GitHubOwner string `toml:"github_owner"`
	// GitHubRepo is the repository holding the content tree
	GitHubRepo string `toml:"github_repo"`
	// Root is the path prefix inside the repository (default: "content")
	Root string `toml:"root"`
	// Token is the access token; prefer LOSSNER_GITHUB_TOKEN over this
	Token string `toml:"token"`
	// RequestsPerSecond caps the API request rate (default: 8)
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// AssistantConfig configures the chat-completions backend for Alex.
type AssistantConfig struct {
	// APIKey authenticates requests; prefer OPENAI_API_KEY over this.
	// Empty means Alex answers from the canned persona.
	APIKey string `toml:"api_key"`
	// Project is the optional project identifier
	Project string `toml:"project"`
	// Model to answer with (default: "gpt-4o")
	Model string `toml:"model"`
	// MaxTokens caps the reply length (default: 300)
	MaxTokens int `toml:"max_tokens"`
	// Temperature for sampling (default: 0.7). A pointer so an explicit
	// zero survives default filling.
	Temperature *float64 `toml:"temperature"`
}

// SpeechConfig configures text-to-speech for /voice.
type SpeechConfig struct {
	// APIKey authenticates requests; prefer ELEVENLABS_API_KEY over this
	APIKey string `toml:"api_key"`
	// VoiceID selects the voice
	VoiceID string `toml:"voice_id"`
	// ModelID selects the synthesis model
	ModelID string `toml:"model_id"`
}

// HistoryConfig configures the conversation log.
type HistoryConfig struct {
	// Enabled controls whether exchanges are recorded (default: true)
	Enabled bool `toml:"enabled"`
	// DatabasePath overrides the SQLite location
	// (default: ~/.lossner-term/history.db)
	DatabasePath string `toml:"database_path"`
	// RetentionDays is how long exchanges are kept (default: 90)
	RetentionDays int `toml:"retention_days"`
}

// ServerConfig configures --serve mode.
type ServerConfig struct {
	// Addr is the listen address (default: ":8080")
	Addr string `toml:"addr"`
}

// UIConfig contains terminal presentation settings.
type UIConfig struct {
	// Theme is the color theme: "green", "amber", "mono"
	Theme string `toml:"theme"`
	// TaglineSeconds is how long each banner tagline shows (default: 4)
	TaglineSeconds int `toml:"tagline_seconds"`
	// AudioEnabled starts the session with /voice already on
	AudioEnabled bool `toml:"audio_enabled"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

func floatPtr(v float64) *float64 {
	return &v
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Content: ContentConfig{
			Root:              "content",
			RequestsPerSecond: 8,
		},

		Assistant: AssistantConfig{
			Model:       "gpt-4o",
			MaxTokens:   300,
			Temperature: floatPtr(0.7),
		},

		Speech: SpeechConfig{
			VoiceID: "pNInz6obpgDQGcFmaJgB",
			ModelID: "eleven_monolingual_v1",
		},

		History: HistoryConfig{
			Enabled:       true,
			RetentionDays: 90,
		},

		Server: ServerConfig{
			Addr: ":8080",
		},

		UI: UIConfig{
			Theme:          "green",
			TaglineSeconds: 4,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the lossner-term configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".lossner-term"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the conversation database path, honoring the
// configured override.
func (c *Config) HistoryPath() (string, error) {
	if c.History.DatabasePath != "" {
		return c.History.DatabasePath, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads the config file, fills defaults and applies environment
// overrides. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a specific config file with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		ensureSecurePermissions(path)
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
		fillDefaults(cfg)
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ensureSecurePermissions tightens config files to 0600 so tokens are
// not world readable.
func ensureSecurePermissions(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.Mode().Perm() != 0o600 {
		if err := os.Chmod(path, 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not fix permissions on %s: %v\n", path, err)
		}
	}
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Content.Root == "" {
		cfg.Content.Root = defaults.Content.Root
	}
	if cfg.Content.RequestsPerSecond == 0 {
		cfg.Content.RequestsPerSecond = defaults.Content.RequestsPerSecond
	}
	if cfg.Assistant.Model == "" {
		cfg.Assistant.Model = defaults.Assistant.Model
	}
	if cfg.Assistant.MaxTokens == 0 {
		cfg.Assistant.MaxTokens = defaults.Assistant.MaxTokens
	}
	if cfg.Assistant.Temperature == nil {
		cfg.Assistant.Temperature = defaults.Assistant.Temperature
	}
	if cfg.Speech.VoiceID == "" {
		cfg.Speech.VoiceID = defaults.Speech.VoiceID
	}
	if cfg.Speech.ModelID == "" {
		cfg.Speech.ModelID = defaults.Speech.ModelID
	}
	if cfg.History.RetentionDays == 0 {
		cfg.History.RetentionDays = defaults.History.RetentionDays
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults.Server.Addr
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.TaglineSeconds == 0 {
		cfg.UI.TaglineSeconds = defaults.UI.TaglineSeconds
	}
}

// ApplyEnvOverrides applies environment variable overrides. Environment
// always beats the file so deployments can inject credentials.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("LOSSNER_GITHUB_OWNER"); v != "" {
		c.Content.GitHubOwner = v
	}
	if v := os.Getenv("LOSSNER_GITHUB_REPO"); v != "" {
		c.Content.GitHubRepo = v
	}
	if v := os.Getenv("LOSSNER_GITHUB_TOKEN"); v != "" {
		c.Content.Token = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.Assistant.APIKey = v
	}
	if v := os.Getenv("OPENAI_PROJECT_ID"); v != "" {
		c.Assistant.Project = v
	}
	if v := os.Getenv("ELEVENLABS_API_KEY"); v != "" {
		c.Speech.APIKey = v
	}
	if v := os.Getenv("ELEVENLABS_VOICE_ID"); v != "" {
		c.Speech.VoiceID = v
	}
	if v := os.Getenv("LOSSNER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LOSSNER_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	validThemes := map[string]bool{"green": true, "amber": true, "mono": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		return ValidationError{Field: "ui.theme", Message: "must be one of green, amber, mono"}
	}
	if t := c.Assistant.Temperature; t != nil && (*t < 0 || *t > 2) {
		return ValidationError{Field: "assistant.temperature", Message: "must be between 0 and 2"}
	}
	if c.Content.RequestsPerSecond < 0 {
		return ValidationError{Field: "content.requests_per_second", Message: "must not be negative"}
	}
	if c.History.RetentionDays < 0 {
		return ValidationError{Field: "history.retention_days", Message: "must not be negative"}
	}
	if (c.Content.GitHubOwner == "") != (c.Content.GitHubRepo == "") {
		return ValidationError{Field: "content", Message: "github_owner and github_repo must be set together"}
	}
	return nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the default TOML file with 0600
// permissions.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to a specific TOML file. The
// write is atomic so a crash never leaves a half-written config behind.
func SaveToPath(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# lossner-term configuration file")
	fmt.Fprintln(&buf, "# Credentials may also come from the environment:")
	fmt.Fprintln(&buf, "#   LOSSNER_GITHUB_TOKEN, OPENAI_API_KEY, ELEVENLABS_API_KEY")
	fmt.Fprintln(&buf, "")

	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESSOR
// =============================================================================

var (
	globalConfig *Config
	globalOnce   sync.Once
)

// Global returns the process-wide configuration, loading it on first
// use. Load failures fall back to defaults.
func Global() *Config {
	globalOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})
	return globalConfig
}

// =============================================================================
// WATCH
// =============================================================================

// Watch reloads the config file whenever it changes and hands the new
// Config to onChange. Returns a stop function. Reload errors are
// reported to onError when non-nil, otherwise dropped.
func Watch(path string, onChange func(*Config), onError func(error)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory: editors replace files, which drops a watch
	// held on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	done := make(chan struct{})
	go func() {
		var last time.Time
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				// Debounce editor write bursts.
				if time.Since(last) < 100*time.Millisecond {
					continue
				}
				last = time.Now()

				cfg, err := LoadFromPath(path)
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()

	var stopOnce sync.Once
	return func() {
		stopOnce.Do(func() {
			close(done)
			watcher.Close()
		})
	}, nil
}
