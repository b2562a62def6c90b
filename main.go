// lossner-term - Joshua Lossner's portfolio as a retro terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/joshua-lossner/lossner-term/internal/assistant"
	"github.com/joshua-lossner/lossner-term/internal/cli"
	"github.com/joshua-lossner/lossner-term/internal/config"
	"github.com/joshua-lossner/lossner-term/internal/content"
	"github.com/joshua-lossner/lossner-term/internal/history"
	"github.com/joshua-lossner/lossner-term/internal/server"
	"github.com/joshua-lossner/lossner-term/internal/session"
	"github.com/joshua-lossner/lossner-term/internal/speech"
	"github.com/joshua-lossner/lossner-term/internal/ui"
	"github.com/joshua-lossner/lossner-term/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		serve    = flag.Bool("serve", false, "serve the JSON API instead of the terminal")
		plain    = flag.Bool("plain", false, "line mode without the full-screen UI")
		cfgPath  = flag.String("config", "", "path to config.toml (default: ~/.lossner-term/config.toml)")
		showVers = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVers {
		fmt.Printf("lossner-term %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg := loadConfig(*cfgPath)
	svc, alex, voice := buildServices(cfg)

	if *serve {
		srv := server.New(svc, alex, voice)
		if err := srv.Run(cfg.Server.Addr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	store := openHistory(cfg)
	if store != nil {
		defer store.Close()
	}

	// A typed nil store must not become a non-nil interface.
	var log session.ExchangeLog
	if store != nil {
		log = store
	}

	controller := session.NewController(svc, alex, voice, log)
	controller.SetAudioEnabled(cfg.UI.AudioEnabled)

	if *plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := cli.RunPlain(controller); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	theme := styles.NewTheme(cfg.UI.Theme)
	model := ui.New(controller, theme, time.Duration(cfg.UI.TaglineSeconds)*time.Second)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if stop := watchUISettings(*cfgPath, program); stop != nil {
		defer stop()
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// watchUISettings feeds config file edits into the running terminal so
// theme and tagline changes apply without a restart. Credentials and
// content settings still need one. Returns nil when no file can be
// watched; the terminal just runs with its startup settings.
func watchUISettings(cfgPath string, program *tea.Program) func() {
	path := cfgPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return nil
		}
		path = p
	}

	stop, err := config.Watch(path, func(next *config.Config) {
		program.Send(ui.SettingsMsg{
			Theme:          next.UI.Theme,
			TaglineSeconds: next.UI.TaglineSeconds,
		})
	}, nil)
	if err != nil {
		return nil
	}
	return stop
}

func loadConfig(path string) *config.Config {
	if path == "" {
		cfg := config.Global()
		ensureConfigFile(cfg)
		return cfg
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}
	return cfg
}

// ensureConfigFile materializes the config file on first run so users
// have something to edit and the watcher has a file to watch.
func ensureConfigFile(cfg *config.Config) {
	path, err := config.ConfigPath()
	if err != nil {
		return
	}
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not write config file: %v\n", err)
	}
}

// buildServices wires the content, assistant and speech layers from
// configuration. Missing credentials degrade each layer, never fail it:
// no repository means built-in content, no model key means the canned
// persona, no speech key means /voice reports itself unavailable.
func buildServices(cfg *config.Config) (*content.Service, *assistant.Assistant, *speech.Client) {
	var client *content.Client
	if cfg.Content.GitHubOwner != "" && cfg.Content.GitHubRepo != "" {
		client = content.NewClient(&content.ClientConfig{
			Owner:             cfg.Content.GitHubOwner,
			Repo:              cfg.Content.GitHubRepo,
			Root:              cfg.Content.Root,
			Token:             cfg.Content.Token,
			RequestsPerSecond: cfg.Content.RequestsPerSecond,
		})
	}
	svc := content.NewService(client)

	alex := assistant.New(assistant.NewClient(&assistant.ClientConfig{
		APIKey:      cfg.Assistant.APIKey,
		Project:     cfg.Assistant.Project,
		Model:       cfg.Assistant.Model,
		MaxTokens:   cfg.Assistant.MaxTokens,
		Temperature: cfg.Assistant.Temperature,
	}))

	voice := speech.NewClient(&speech.ClientConfig{
		APIKey:  cfg.Speech.APIKey,
		VoiceID: cfg.Speech.VoiceID,
		ModelID: cfg.Speech.ModelID,
	})

	return svc, alex, voice
}

// openHistory opens the conversation log and prunes entries past the
// retention window. Any failure just disables /history.
func openHistory(cfg *config.Config) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}

	path, err := cfg.HistoryPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: conversation history disabled: %v\n", err)
		return nil
	}
	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: conversation history disabled: %v\n", err)
		return nil
	}

	if cfg.History.RetentionDays > 0 {
		retain := time.Duration(cfg.History.RetentionDays) * 24 * time.Hour
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := store.Prune(ctx, retain); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history prune failed: %v\n", err)
		}
	}
	return store
}
