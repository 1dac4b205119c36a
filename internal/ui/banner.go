package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the ASCII art banner for the application header
var Banner = []string{
	"    _  _____ _____ _   _ _   _ _____ ____       ____ ____  ",
	"   / \\|_   _|_   _| | | | \\ | | ____|  _ \\     / ___/ ___| ",
	"  / _ \\ | |   | | | | | |  \\| |  _| | | | |   | |   \\___ \\ ",
	" / ___ \\| |   | | | |_| | |\\  | |___| |_| |   | |___ ___) |",
	"/_/   \\_\\_|   |_|  \\___/|_| \\_|_____|____/     \\____|____/ ",
}

// RenderBanner returns the styled banner as a string
func RenderBanner(dryRun bool) string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(ColorCyan).
		Align(lipgloss.Center)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	// Add dry run warning if enabled
	if dryRun {
		lines = append(lines, "")
		warningStyle := lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true).
			Align(lipgloss.Center)
		lines = append(lines, warningStyle.Render("⚠ DRY RUN MODE"))
	}

	return strings.Join(lines, "\n")
}
