// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/simbaid-sync/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := row("Application:", "SimbaID sync") +
		row("Version:", info.Version) +
		row("Date:", info.Date) +
		row("Commit:", info.Commit)

	return renderPage("ABOUT", body, "esc: back")
}
