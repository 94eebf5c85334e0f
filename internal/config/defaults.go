// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to fields that no configuration source has set.
const (
	DefaultHTTPAddress   = ":3000"
	DefaultBasePath      = "/api"
	DefaultTokenDuration = 30 * time.Minute
	DefaultBcryptCost    = 10
	DefaultVersion       = "N/A"
	DefaultLogLevel      = "info"
)

// Defaults returns the configuration used to fill empty fields after all
// sources have been merged.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    DefaultBcryptCost,
			Version:       DefaultVersion,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			BasePath:       DefaultBasePath,
			AllowedOrigins: []string{"*"},
		},
	}
}
