// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant implements Alex, the terminal's conversational layer.
package assistant

import "context"

// OfflineMessage is what callers show when even the fallback path fails.
const OfflineMessage = "Alex is temporarily offline. Please try again in a moment."

// Assistant is Alex: a live model when a key is configured, the canned
// persona otherwise.
type Assistant struct {
	client *Client
}

// New creates an Assistant. A nil client, or one without an API key,
// answers purely from the canned persona.
func New(client *Client) *Assistant {
	return &Assistant{client: client}
}

// Live reports whether a language model backs this assistant.
func (a *Assistant) Live() bool {
	return a.client != nil && a.client.config.APIKey != ""
}

// Reply answers one message. Transport and model failures degrade to the
// canned persona rather than erroring; only a rejected credential comes
// back as an error, so the operator can notice a bad key.
func (a *Assistant) Reply(ctx context.Context, message string) (string, error) {
	if !a.Live() {
		return CannedReply(message), nil
	}

	response, err := a.client.Complete(ctx, message)
	if err != nil {
		if IsUnauthorized(err) {
			return "", err
		}
		return CannedReply(message), nil
	}
	return response, nil
}
