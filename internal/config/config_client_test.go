// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, rest, err := GetClientConfig([]string{"list", "-status", "Pending"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api", cfg.Adapter.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Contains(t, cfg.TokenFile, ".task-keeper-token")
	assert.Equal(t, []string{"list", "-status", "Pending"}, rest)
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"TASK_KEEPER_SERVER_URL":      "http://env:3000/api",
		"TASK_KEEPER_REQUEST_TIMEOUT": "3s",
		"TASK_KEEPER_TOKEN_FILE":      "/tmp/env-token",
	})

	cfg, rest, err := GetClientConfig([]string{"-s", "http://flag:8080/api", "stats"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:8080/api", cfg.Adapter.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/env-token", cfg.TokenFile)
	assert.Equal(t, []string{"stats"}, rest)
}

func TestGetClientConfig_Errors(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		clearEnvVars(t)

		_, _, err := GetClientConfig([]string{"-bogus"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing client flags")
	})

	t.Run("bad env timeout", func(t *testing.T) {
		setEnvVars(t, map[string]string{"TASK_KEEPER_REQUEST_TIMEOUT": "later"})

		_, _, err := GetClientConfig(nil)
		require.Error(t, err)
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		clearEnvVars(t)

		_, _, err := GetClientConfig([]string{"-timeout", "-1s"})
		assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	})
}
