// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
)

const msgServerUnavailable = "No network connection or the server is unavailable"

// HumanizeError turns a client error into the text shown to the user.
// Server answers are shown verbatim, followed by any field issues.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrNoToken) {
		return "You are not logged in. Run: task-keeper login -email <email> -password <password>"
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return respErr.Message + ". Your session has ended, please log in again"
		}

		var b strings.Builder
		b.WriteString(respErr.Message)
		for _, issue := range respErr.Issues {
			b.WriteString("\n  - ")
			b.WriteString(issue.Field)
			b.WriteString(": ")
			b.WriteString(issue.Message)
		}
		return b.String()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
