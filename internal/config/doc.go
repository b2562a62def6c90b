// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// lossner-term.
//
// Configuration comes from, in order of precedence:
//   - environment variables (LOSSNER_GITHUB_TOKEN, OPENAI_API_KEY, ...)
//   - ~/.lossner-term/config.toml
//   - built-in defaults
//
// A .env file in the working directory is loaded into the environment
// first, so local development can keep credentials out of the shell
// profile. Credentials live in the environment or the 0600 config file,
// never in code.
package config
