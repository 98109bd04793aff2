package tui

import (
	"strings"

	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

var buildInfoLabelStyle = lipgloss.NewStyle().Faint(true).Width(10)

// renderBuildInfoWindow shows the client build. Missing ldflags values are
// shown as "N/A".
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Клиент", "envkeeper"},
		{"Версия", info.BuildVersion()},
		{"Сборка", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		value := strings.TrimSpace(row[1])
		if value == "" {
			value = "N/A"
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, buildInfoLabelStyle.Render(row[0]), value))
	}

	return overlayBoxStyle.Render(renderPage("О ПРОГРАММЕ", strings.Join(lines, "\n"), "esc: назад"))
}
