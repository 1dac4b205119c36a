package ui

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.commitsort/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// PlanFlowDiagram creates a visual diagram showing files flowing into commits
// Example: [ 12 files ] ====> [ 4 commits ]
func PlanFlowDiagram(files, commits int) string {
	leftStyle := lipgloss.NewStyle().Foreground(ColorYellow)
	leftBoldStyle := lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	rightStyle := lipgloss.NewStyle().Foreground(ColorGreen)
	rightBoldStyle := lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	arrowStyle := lipgloss.NewStyle().Foreground(ColorCyan)

	leftText := centerText(fmt.Sprintf("%d files", files), 11)
	rightText := centerText(fmt.Sprintf("%d commits", commits), 11)

	topLeft := leftStyle.Render("  ┌─────────────┐")
	topRight := rightStyle.Render("┌─────────────┐")

	middleLeft := leftStyle.Render("  │ ") + leftBoldStyle.Render(leftText) + leftStyle.Render(" │")
	arrow := arrowStyle.Render("  ====>  ")
	middleRight := rightStyle.Render("│ ") + rightBoldStyle.Render(rightText) + rightStyle.Render(" │")

	bottomLeft := leftStyle.Render("  └─────────────┘")
	bottomRight := rightStyle.Render("└─────────────┘")

	line1 := topLeft + "         " + topRight
	line2 := middleLeft + arrow + middleRight
	line3 := bottomLeft + "         " + bottomRight

	return line1 + "\n" + line2 + "\n" + line3
}

// centerText centers a string within a given width
func centerText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	leftPad := (width - len(s)) / 2
	rightPad := width - len(s) - leftPad
	return strings.Repeat(" ", leftPad) + s + strings.Repeat(" ", rightPad)
}

// YesNoButtons creates interactive Yes/No buttons
// selection: 0 for Yes, 1 for No
func YesNoButtons(selection int) string {
	var yesBorder, yesText, yesIcon lipgloss.Color
	var noBorder, noText, noIcon lipgloss.Color

	if selection == 0 {
		yesBorder = ColorGreen
		yesText = ColorGreen
		yesIcon = ColorGreen
	} else {
		yesBorder = ColorDarkGray
		yesText = ColorWhite
		yesIcon = ColorDarkGray
	}

	if selection == 1 {
		noBorder = ColorRed
		noText = ColorRed
		noIcon = ColorRed
	} else {
		noBorder = ColorDarkGray
		noText = ColorWhite
		noIcon = ColorDarkGray
	}

	yesStyle := lipgloss.NewStyle().Foreground(yesBorder)
	yesTextStyle := lipgloss.NewStyle().Foreground(yesText).Bold(true)
	yesIconStyle := lipgloss.NewStyle().Foreground(yesIcon)

	noStyle := lipgloss.NewStyle().Foreground(noBorder)
	noTextStyle := lipgloss.NewStyle().Foreground(noText).Bold(true)
	noIconStyle := lipgloss.NewStyle().Foreground(noIcon)

	// Build buttons
	var iconYes, iconNo string
	if selection == 0 {
		iconYes = ">"
	} else {
		iconYes = " "
	}
	if selection == 1 {
		iconNo = ">"
	} else {
		iconNo = " "
	}

	line1 := yesStyle.Render("  ┌────────┐") + " " + noStyle.Render("┌───────┐")
	line2 := fmt.Sprintf("%s%s%s %s%s%s",
		yesStyle.Render("  │"),
		yesTextStyle.Render(fmt.Sprintf(" %s  YES ", yesIconStyle.Render(iconYes))),
		yesStyle.Render("│"),
		noStyle.Render("│"),
		noTextStyle.Render(fmt.Sprintf(" %s  NO ", noIconStyle.Render(iconNo))),
		noStyle.Render("│"),
	)
	line3 := yesStyle.Render("  └────────┘") + " " + noStyle.Render("└───────┘")

	return line1 + "\n" + line2 + "\n" + line3
}

// Spinner frames using braille characters
var SpinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner returns the spinner character at the given frame index
func Spinner(frame int) string {
	return string(SpinnerFrames[frame%len(SpinnerFrames)])
}

// Checkbox renders a checkbox in the given state
func Checkbox(checked bool) string {
	if checked {
		return "[✓]"
	}
	return "[ ]"
}

// Arrow returns an arrow indicator for selection
func Arrow(selected bool) string {
	if selected {
		return "▶ "
	}
	return "  "
}

// ProgressBar creates a progress bar
func ProgressBar(current, total int, width int) string {
	if total == 0 {
		return ""
	}

	progress := float64(current) / float64(total)
	filled := int(progress * float64(width))
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	percentage := int(progress * 100)

	barStyle := lipgloss.NewStyle().Foreground(ColorGreen)
	percentStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		barStyle.Render(fmt.Sprintf("[%s]", bar)),
		percentStyle.Render(fmt.Sprintf("%d%%", percentage)),
	)
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// ResultIcon returns the icon and color for a commit result status
func ResultIcon(s models.CommitStatus) (string, lipgloss.Color) {
	switch {
	case models.IsCommitted(s):
		return "✓", ColorGreen
	case models.IsSkipped(s):
		return "⊘", ColorYellow
	case models.IsRejected(s):
		return "✗", ColorRed
	default:
		return "·", ColorWhite
	}
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MenuInfoPanel returns the ASCII art and description for a menu item
func MenuInfoPanel(index int) (title string, lines []string) {
	switch index {
	case 0: // Organize & Commit
		title = "Organize & Commit"
		box := lipgloss.NewStyle().Foreground(ColorCyan)
		text := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
		lines = []string{
			"",
			box.Render("     ┌────┐") + box.Render(" ┌────┐") + box.Render(" ┌────┐"),
			box.Render("     │") + text.Render(" C1 ") + box.Render("│") + box.Render(" │") + text.Render(" C2 ") + box.Render("│") + box.Render(" │") + text.Render(" C3 ") + box.Render("│"),
			box.Render("     └────┘") + box.Render(" └────┘") + box.Render(" └────┘"),
			"",
			"  • Scans the working tree",
			"  • Groups changes by category",
			"  • One atomic commit per group",
			"  • Review before anything is written",
		}
	case 1: // Preview Plan
		title = "Preview Plan"
		box := lipgloss.NewStyle().Foreground(ColorMagenta)
		lines = []string{
			"",
			box.Render("        ┌──────────┐"),
			box.Render("        │") + lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true).Render("   PLAN   ") + box.Render("│"),
			box.Render("        └──────────┘"),
			"",
			"  • Shows groups and commit order",
			"  • Shows generated messages",
			"  • Read-only, nothing is committed",
		}
	case 2: // Excluded Files
		title = "Excluded Files"
		warn := lipgloss.NewStyle().Foreground(ColorYellow)
		lines = []string{
			"",
			warn.Render("        .env  *.pem  *.key"),
			"",
			"  • Lists changes held back by policy",
			"  • Shows the rule that matched",
			"  • Secrets never reach a commit",
		}
	case 3: // Session History
		title = "Session History"
		lines = []string{
			"",
			"  • Commits recorded in the last 24h",
			"  • Grouped by repository",
		}
	default: // Quit
		title = "Quit"
		lines = []string{
			"",
			"  Exit the application",
		}
	}
	return title, lines
}

// TwoColumns renders two columns side by side
func TwoColumns(left, right string, gap int) string {
	gapStr := strings.Repeat(" ", gap)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, gapStr, right)
}

// UnifiedPanel creates two columns with a vertical separator (no border - outer border is in View)
func UnifiedPanel(leftContent, rightContent string, leftWidth, rightWidth int, borderColor lipgloss.Color) string {
	leftStyle := lipgloss.NewStyle().Width(leftWidth).Padding(0, 1)
	rightStyle := lipgloss.NewStyle().Width(rightWidth).Padding(0, 1)

	leftCol := leftStyle.Render(leftContent)
	rightCol := rightStyle.Render(rightContent)

	// Build vertical separator to match column height
	separatorStyle := lipgloss.NewStyle().Foreground(ColorSubtle())
	separator := separatorStyle.Render("│")

	leftLines := strings.Split(leftCol, "\n")
	rightLines := strings.Split(rightCol, "\n")
	maxLines := len(leftLines)
	if len(rightLines) > maxLines {
		maxLines = len(rightLines)
	}
	var sepLines []string
	for i := 0; i < maxLines; i++ {
		sepLines = append(sepLines, separator)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, strings.Join(sepLines, "\n"), rightCol)
}

// ColumnBox creates a bordered column with title for two-column layouts
// If height > 0, content is padded/truncated to exactly that many lines
func ColumnBox(content string, title string, color lipgloss.Color, isActive bool, width int, height int) string {
	borderColor := color
	if !isActive {
		borderColor = ColorDarkGray
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width)

	var fullContent string
	if title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
		fullContent = titleStyle.Render(" "+title+" ") + "\n" + content
	} else {
		fullContent = content
	}

	// Manually pad/truncate to fixed height
	if height > 0 {
		lines := strings.Split(fullContent, "\n")
		if len(lines) < height {
			for len(lines) < height {
				lines = append(lines, "")
			}
		} else if len(lines) > height {
			lines = lines[:height]
		}
		fullContent = strings.Join(lines, "\n")
	}

	return style.Render(fullContent)
}

// GroupListItem renders a single group row with checkbox and file count
func GroupListItem(g models.ChangeGroup, selected bool, highlighted bool) string {
	color := CategoryColor(g.Category)
	checkbox := Checkbox(selected)
	arrow := Arrow(highlighted)

	var style lipgloss.Style
	if highlighted {
		style = lipgloss.NewStyle().Foreground(color).Bold(true)
	} else if selected {
		style = lipgloss.NewStyle().Foreground(color)
	} else {
		style = lipgloss.NewStyle().Foreground(ColorWhite)
	}

	checkStyle := lipgloss.NewStyle().Foreground(color)
	countStyle := lipgloss.NewStyle().Foreground(ColorSubtle())

	scope := g.Summary
	if scope == "" {
		scope = "repository root"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		style.Render(arrow),
		checkStyle.Render(checkbox),
		style.Render(fmt.Sprintf("%-8s", g.Category.Title())),
		countStyle.Render(fmt.Sprintf("%2d files", len(g.Members))),
		countStyle.Render(scope),
	)
}

// FileListItem renders one member path with its status marker
func FileListItem(rec models.ChangeRecord) string {
	statusStyle := lipgloss.NewStyle().Foreground(StatusColor(rec.Status)).Bold(true)
	pathStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("   %s %s",
		statusStyle.Render(rec.Status.Symbol()),
		pathStyle.Render(rec.Path),
	)
}

// ExcludedListItem renders an excluded path with the rule that matched
func ExcludedListItem(ex models.ExcludedRecord) string {
	pathStyle := lipgloss.NewStyle().Foreground(ColorYellow)
	ruleStyle := lipgloss.NewStyle().Foreground(ColorSubtle())

	return fmt.Sprintf("   %s %s",
		pathStyle.Render(ex.Record.Path),
		ruleStyle.Render(fmt.Sprintf("(%s: %s)", ex.Pattern, ex.Reason)),
	)
}

// MenuRow renders a menu row with optional highlight background
// width should be the inner width of the panel (excluding border)
func MenuRow(icon, title, desc string, color lipgloss.Color, selected bool, width int) []string {
	arrow := "  "
	if selected {
		arrow = "▶ "
	}

	if selected {
		// For selected items, render the whole line with background
		rowStyle := lipgloss.NewStyle().Background(ColorDarkGray).Width(width)
		arrowStyle := lipgloss.NewStyle().Foreground(color).Background(ColorDarkGray)
		iconStyle := lipgloss.NewStyle().Background(ColorDarkGray)
		titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true).Background(ColorDarkGray)
		descStyle := lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorDarkGray)

		line1 := rowStyle.Render(arrowStyle.Render(arrow) + iconStyle.Render(icon+"  ") + titleStyle.Render(title))
		line2 := rowStyle.Render("       " + descStyle.Render(desc))

		return []string{line1, line2}
	}

	// Non-selected items - no background
	arrowStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	line1 := arrowStyle.Render(arrow) + icon + "  " + titleStyle.Render(title)
	line2 := "       " + descStyle.Render(desc)

	return []string{line1, line2}
}
