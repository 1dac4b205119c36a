package ui

import (
	"os"

	"github.com/wahlandcase/attuned.commitsort/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan       = lipgloss.Color("#00FFFF")
	ColorGreen      = lipgloss.Color("#00FF00")
	ColorYellow     = lipgloss.Color("#FFFF00")
	ColorRed        = lipgloss.Color("#FF0000")
	ColorMagenta    = lipgloss.Color("#FF00FF")
	ColorBlue       = lipgloss.Color("#5555FF")
	ColorPurple     = lipgloss.Color("#AA55FF")
	ColorOrange     = lipgloss.Color("#FFA500")
	ColorLightGreen = lipgloss.Color("#90EE90")
	ColorWhite      = lipgloss.Color("#FFFFFF")
	ColorDarkGray   = lipgloss.Color("8") // ANSI 8
)

// darkBackground is detected once at startup; light terminals get a darker
// subtle color so dimmed text stays readable
var darkBackground = termenv.NewOutput(os.Stdout).HasDarkBackground()

// ColorSubtle returns the color for secondary text
func ColorSubtle() lipgloss.Color {
	if darkBackground {
		return ColorDarkGray
	}
	return lipgloss.Color("240")
}

// CategoryColor maps a change category to its display color
func CategoryColor(c models.Category) lipgloss.Color {
	switch c {
	case models.CategoryConfig:
		return ColorOrange
	case models.CategoryRefactor:
		return ColorPurple
	case models.CategoryFeature:
		return ColorGreen
	case models.CategoryFix:
		return ColorRed
	case models.CategoryTest:
		return ColorYellow
	case models.CategoryDocs:
		return ColorBlue
	case models.CategoryStyle:
		return ColorMagenta
	default:
		return ColorWhite
	}
}

// StatusColor maps a change status to its display color
func StatusColor(s models.ChangeStatus) lipgloss.Color {
	switch s {
	case models.StatusAdded, models.StatusUntracked:
		return ColorGreen
	case models.StatusModified:
		return ColorYellow
	case models.StatusDeleted:
		return ColorRed
	default:
		return ColorWhite
	}
}
