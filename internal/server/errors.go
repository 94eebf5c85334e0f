// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoHTTPAddress is returned by NewServer when no listen address is
	// configured.
	ErrNoHTTPAddress = errors.New("HTTP address is not configured")

	// ErrNoHTTPHandler is returned when there is no router to serve.
	ErrNoHTTPHandler = errors.New("HTTP handler is not created")
)
