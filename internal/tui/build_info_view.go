// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

// RenderBuildInfo renders the client build metadata, with the server
// version when it is known.
func RenderBuildInfo(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: TaskKeeper\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	if serverVersion != "" {
		b.WriteString("\nServer version: ")
		b.WriteString(serverVersion)
	}

	return renderPage("ABOUT", b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
