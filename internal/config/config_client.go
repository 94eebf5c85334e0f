// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the API including its base path
	// (e.g. "http://localhost:3000/api").
	// Env: TASK_KEEPER_SERVER_URL
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:3000/api"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: TASK_KEEPER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter

	// TokenFile is where the session token is kept between invocations.
	// Defaults to ".task-keeper-token" in the user's home directory.
	// Env: TASK_KEEPER_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// clientEnvPrefix is prepended to every client environment variable.
const clientEnvPrefix = "TASK_KEEPER_"

// GetClientConfig builds and validates the client configuration from
// environment variables (TASK_KEEPER_*) overridden by the global flags found
// at the start of args. The remaining, non-flag arguments (the subcommand
// and its operands) are returned alongside the config.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnvWithPrefix(envCfg, clientEnvPrefix); err != nil {
		return nil, nil, err
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := envCfg
	if err := mergo.Merge(cfg, flagCfg, mergo.WithOverride); err != nil {
		return nil, nil, fmt.Errorf("error merging client configs: %w", err)
	}

	if cfg.TokenFile == "" {
		cfg.TokenFile = defaultTokenFile()
	}

	return cfg, rest, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("task-keeper", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.ServerURL, "s", "", "API base URL (e.g., http://localhost:3000/api)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.TokenFile, "token-file", "", "Session token file path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".task-keeper-token"
	}

	return filepath.Join(home, ".task-keeper-token")
}
