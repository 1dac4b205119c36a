package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/wahlandcase/attuned.commitsort/internal/models"
	"github.com/wahlandcase/attuned.commitsort/internal/plan"
	"github.com/wahlandcase/attuned.commitsort/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the usable content width, adapting to terminal size
func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	// Calculate fixed element heights
	bannerLines := len(ui.Banner)
	if m.dryRun {
		bannerLines += 2 // dry run warning
	}
	statusHeight := 3 // status bar with border

	// Available height for content = total - banner - gaps - status
	availableHeight := m.height - bannerLines - 3 - statusHeight
	if availableHeight < 10 {
		availableHeight = 10
	}

	var sections []string

	// Banner
	sections = append(sections, ui.RenderBanner(m.dryRun))
	sections = append(sections, "")

	// Use fixed content width for stable layout
	contentWidth := m.contentWidth()

	// Screens that manage their own full layout (no outer box)
	fullLayoutScreens := m.screen == ScreenScanning ||
		m.screen == ScreenPlanReview ||
		m.screen == ScreenPlanPreview ||
		m.screen == ScreenSummary

	if fullLayoutScreens {
		sections = append(sections, m.renderContentWithHeight(availableHeight))
	} else {
		// Standard outer box for simpler screens - always use fixed width
		outerBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorPurple).
			Width(contentWidth).
			Padding(1, 2)

		sections = append(sections, outerBox.Render(m.renderContentWithHeight(availableHeight)))
	}

	// Status bar
	sections = append(sections, "")
	sections = append(sections, m.renderStatusBar())

	content := strings.Join(sections, "\n")

	// Center horizontally in the terminal
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m Model) renderContentWithHeight(availableHeight int) string {
	switch m.screen {
	case ScreenMainMenu:
		return m.renderMainMenu()
	case ScreenScanning:
		return m.renderScanning()
	case ScreenPlanReview:
		return m.renderPlanReviewWithHeight(availableHeight)
	case ScreenPlanPreview:
		return m.renderPlanPreviewWithHeight(availableHeight)
	case ScreenExcluded:
		return m.renderExcluded()
	case ScreenConfirmation:
		return m.renderConfirmation()
	case ScreenCommitting:
		return m.renderCommitting()
	case ScreenSummary:
		return m.renderSummaryWithHeight(availableHeight)
	case ScreenError:
		return m.renderError()
	case ScreenUpdatePrompt:
		return m.renderUpdatePrompt()
	case ScreenUpdating:
		return m.renderUpdating()
	case ScreenSessionHistory:
		return m.renderSessionHistory()
	default:
		return ""
	}
}

func (m Model) renderMainMenu() string {
	menuItems := []struct {
		icon  string
		title string
		desc  string
		color lipgloss.Color
	}{
		{"1.", "ORGANIZE & COMMIT", "Group changes into atomic commits", ui.ColorCyan},
		{"2.", "PREVIEW PLAN", "See the plan without committing", ui.ColorMagenta},
		{"3.", "EXCLUDED FILES", "Changes held back by policy", ui.ColorYellow},
		{"4.", "SESSION HISTORY", "Commits from the last 24h", ui.ColorOrange},
		{"5.", "QUIT", "Exit application", ui.ColorRed},
	}

	// Build left column (menu) content
	var menuLines []string
	menuLines = append(menuLines, "")
	for i, item := range menuItems {
		rows := ui.MenuRow(item.icon, item.title, item.desc, item.color, i == m.menuIndex, 46)
		menuLines = append(menuLines, rows...)
		menuLines = append(menuLines, "")
	}

	menuTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorOrange)
	menuContent := menuTitleStyle.Render(" Select Mode ") + "\n" + strings.Join(menuLines, "\n")

	// Build right column (info panel)
	infoTitle, infoLines := ui.MenuInfoPanel(m.menuIndex)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorWhite)
	infoContent := titleStyle.Render(" "+infoTitle+" ") + "\n" + strings.Join(infoLines, "\n")

	return ui.UnifiedPanel(menuContent, infoContent, 48, 48, ui.ColorCyan)
}

func (m Model) renderScanning() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
	messageStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)

	// Pulse the message brightness with a sine wave
	pulse := (math.Sin(m.pulsePhase) + 1.0) / 2.0
	if pulse > 0.5 {
		messageStyle = messageStyle.Bold(true)
	}

	lines := []string{
		"",
		"",
		fmt.Sprintf("        %s  %s",
			spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
			messageStyle.Render(m.loadingMessage)),
		"",
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPlanReviewWithHeight(availableHeight int) string {
	if m.scan == nil {
		return ""
	}
	groups := m.scan.Plan.Groups

	colHeight := availableHeight - 6
	if colHeight < 8 {
		colHeight = 8
	}

	// Left column: groups in commit order
	var left []string
	left = append(left, "")
	for i, g := range groups {
		selected := i < len(m.groupSelected) && m.groupSelected[i]
		left = append(left, ui.GroupListItem(g, selected, i == m.groupIndex))
	}
	left = append(left, "")
	countStyle := lipgloss.NewStyle().Foreground(ui.ColorSubtle())
	left = append(left, countStyle.Render(fmt.Sprintf("  %d groups selected, %d files",
		len(m.selectedGroups()), m.selectedFileCount())))

	// Right column: files and message preview for the highlighted group
	var right []string
	if m.groupIndex < len(groups) {
		g := groups[m.groupIndex]
		subjectStyle := lipgloss.NewStyle().Foreground(ui.CategoryColor(g.Category)).Bold(true)
		right = append(right, "")
		right = append(right, "  "+subjectStyle.Render(plan.Subject(g, m.config.Commits.SubjectLimit)))
		right = append(right, "")
		for _, member := range g.Members {
			right = append(right, ui.FileListItem(member))
		}
	}

	leftBox := ui.ColumnBox(strings.Join(left, "\n"), "Commit Plan", ui.ColorCyan, true, 52, colHeight)
	rightBox := ui.ColumnBox(strings.Join(right, "\n"), "Group Detail", ui.ColorGreen, false, 52, colHeight)

	header := ui.PlanFlowDiagram(m.scan.Plan.TotalFiles(), len(groups))

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, leftBox, " ", rightBox)
}

func (m Model) renderPlanPreviewWithHeight(availableHeight int) string {
	if m.scan == nil {
		return ""
	}

	if m.nothingToDo && len(m.scan.Plan.Groups) == 0 {
		okStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
		subtle := lipgloss.NewStyle().Foreground(ui.ColorSubtle())
		lines := []string{
			"",
			"  " + okStyle.Render("✓ Nothing to commit"),
			"",
			"  " + subtle.Render("The working tree has no changes eligible for a commit."),
		}
		if len(m.scan.Excluded) > 0 {
			lines = append(lines, "  "+subtle.Render(fmt.Sprintf(
				"%d changed files are excluded by policy (press x to view).", len(m.scan.Excluded))))
		}
		return strings.Join(lines, "\n")
	}

	var lines []string
	lines = append(lines, ui.SectionHeader("COMMIT PLAN", ui.ColorCyan))
	lines = append(lines, "")

	for i, g := range m.scan.Plan.Groups {
		numStyle := lipgloss.NewStyle().Foreground(ui.ColorSubtle())
		subjectStyle := lipgloss.NewStyle().Foreground(ui.CategoryColor(g.Category)).Bold(true)
		lines = append(lines, fmt.Sprintf("  %s %s",
			numStyle.Render(fmt.Sprintf("%d.", i+1)),
			subjectStyle.Render(plan.Subject(g, m.config.Commits.SubjectLimit))))
		for _, member := range g.Members {
			lines = append(lines, "  "+ui.FileListItem(member))
		}
		lines = append(lines, "")
	}

	if len(m.scan.Excluded) > 0 {
		subtle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
		lines = append(lines, subtle.Render(fmt.Sprintf("  %d files excluded by policy (press x to view)",
			len(m.scan.Excluded))))
	}

	// Scroll window
	maxLines := availableHeight - 2
	if maxLines < 5 {
		maxLines = 5
	}
	start := m.previewScroll
	if start > len(lines)-maxLines {
		start = len(lines) - maxLines
	}
	if start < 0 {
		start = 0
	}
	end := start + maxLines
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n")
}

func (m Model) renderExcluded() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("EXCLUDED BY POLICY", ui.ColorYellow))
	lines = append(lines, "")

	if m.scan == nil || len(m.scan.Excluded) == 0 {
		subtle := lipgloss.NewStyle().Foreground(ui.ColorSubtle())
		lines = append(lines, subtle.Render("  No changes matched the exclusion policy."))
		return strings.Join(lines, "\n")
	}

	for _, ex := range m.scan.Excluded {
		lines = append(lines, ui.ExcludedListItem(ex))
	}

	lines = append(lines, "")
	subtle := lipgloss.NewStyle().Foreground(ui.ColorSubtle())
	lines = append(lines, subtle.Render("  These files never appear in any commit this tool creates."))

	return strings.Join(lines, "\n")
}

func (m Model) renderConfirmation() string {
	groups := m.selectedGroups()

	var lines []string
	lines = append(lines, ui.SectionHeader("CONFIRM COMMITS", ui.ColorCyan))
	lines = append(lines, "")

	repoStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite).Bold(true)
	lines = append(lines, fmt.Sprintf("  Repository: %s", repoStyle.Render(m.scan.RepoName)))
	lines = append(lines, "")

	for i, g := range groups {
		subjectStyle := lipgloss.NewStyle().Foreground(ui.CategoryColor(g.Category))
		lines = append(lines, fmt.Sprintf("  %d. %s",
			i+1, subjectStyle.Render(plan.Subject(g, m.config.Commits.SubjectLimit))))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %d commits will be created, one per group.", len(groups)))
	lines = append(lines, "")
	lines = append(lines, ui.YesNoButtons(m.confirmSelection))

	return strings.Join(lines, "\n")
}

func (m Model) renderCommitting() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
	stepStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s  %s",
		spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
		stepStyle.Render(m.applyStep)))
	lines = append(lines, "")
	lines = append(lines, "  "+ui.ProgressBar(m.applyCurrent, m.applyTotal, 40))

	return strings.Join(lines, "\n")
}

func (m Model) renderSummaryWithHeight(availableHeight int) string {
	var lines []string

	committed := 0
	for _, res := range m.applyResults {
		if models.IsCommitted(res.Status) {
			committed++
		}
	}

	titleStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
	title := fmt.Sprintf("%d of %d commits recorded", committed, len(m.applyResults))
	if m.dryRun {
		title += " (dry run)"
	}
	// Typewriter reveal on the title
	revealed := title
	if m.typewriterPos < len(title) {
		revealed = title[:m.typewriterPos]
	}
	lines = append(lines, "")
	lines = append(lines, "  "+titleStyle.Render(revealed))
	lines = append(lines, "")

	for _, res := range m.applyResults {
		icon, color := ui.ResultIcon(res.Status)
		iconStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
		subjectStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		detailStyle := lipgloss.NewStyle().Foreground(ui.ColorSubtle())

		detail := models.CommitHash(res.Status)
		if reason := models.StatusReason(res.Status); reason != "" {
			detail = reason
		}

		lines = append(lines, fmt.Sprintf("  %s %s %s",
			iconStyle.Render(icon),
			subjectStyle.Render(res.Subject),
			detailStyle.Render(detail)))
	}

	content := strings.Join(lines, "\n")

	// Overlay confetti while particles are alive
	if len(m.confetti) > 0 {
		content = overlayConfetti(content, m.confetti, m.contentWidth(), availableHeight)
	}

	return content
}

// overlayConfetti plots particles over the content on a fixed-size canvas
func overlayConfetti(content string, particles []ConfettiParticle, width, height int) string {
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	// Confetti only lands on blank lines, so styled content stays intact
	canvas := make([][]rune, len(lines))
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for _, p := range particles {
		x, y := int(p.X), int(p.Y)
		if y >= 0 && y < len(canvas) && x >= 0 && x < width {
			canvas[y][x] = p.Char
		}
	}

	for i := range lines {
		if strings.TrimSpace(lines[i]) == "" {
			style := lipgloss.NewStyle().Foreground(ui.ColorMagenta)
			lines[i] = style.Render(strings.TrimRight(string(canvas[i]), " "))
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderError() string {
	titleStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
	messageStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, "  "+titleStyle.Render("✗ Error"))
	lines = append(lines, "")
	for _, line := range strings.Split(m.errorMessage, "\n") {
		lines = append(lines, "  "+messageStyle.Render(line))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderUpdatePrompt() string {
	titleStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, "  "+titleStyle.Render("Update available"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  Current: %s", m.version))
	if m.updateAvailable != nil {
		lines = append(lines, fmt.Sprintf("  Latest:  %s", versionStyle.Render(m.updateAvailable.TagName)))
	}
	lines = append(lines, "")

	options := []string{"Update now", "Skip", "Skip this version"}
	for i, opt := range options {
		arrow := ui.Arrow(i == m.updateSelection)
		style := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		if i == m.updateSelection {
			style = lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
		}
		lines = append(lines, "  "+style.Render(arrow+opt))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderUpdating() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
	return fmt.Sprintf("\n  %s  Downloading update...", spinnerStyle.Render(ui.Spinner(m.spinnerFrame)))
}

func (m Model) renderSessionHistory() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("SESSION HISTORY", ui.ColorOrange))
	lines = append(lines, "")

	if len(m.sessionCommits) == 0 {
		subtle := lipgloss.NewStyle().Foreground(ui.ColorSubtle())
		lines = append(lines, subtle.Render("  No commits recorded in the last 24 hours."))
		return strings.Join(lines, "\n")
	}

	repoStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	hashStyle := lipgloss.NewStyle().Foreground(ui.ColorSubtle())
	for i := len(m.sessionCommits) - 1; i >= 0; i-- {
		c := m.sessionCommits[i]
		lines = append(lines, fmt.Sprintf("  %s %s %s %s",
			hashStyle.Render(c.createdAt.Format("15:04")),
			repoStyle.Render(c.repoName),
			c.subject,
			hashStyle.Render(c.hash)))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	var hints []string

	switch m.screen {
	case ScreenMainMenu:
		hints = append(hints,
			ui.KeyBinding("↑/↓", "navigate", ui.ColorCyan),
			ui.KeyBinding("enter", "select", ui.ColorGreen),
			ui.KeyBinding("c", "config", ui.ColorYellow),
			ui.KeyBinding("q", "quit", ui.ColorRed),
		)
	case ScreenPlanReview:
		hints = append(hints,
			ui.KeyBinding("↑/↓", "navigate", ui.ColorCyan),
			ui.KeyBinding("space", "toggle", ui.ColorYellow),
			ui.KeyBinding("a", "all", ui.ColorYellow),
			ui.KeyBinding("x", "excluded", ui.ColorOrange),
			ui.KeyBinding("enter", "continue", ui.ColorGreen),
			ui.KeyBinding("esc", "back", ui.ColorRed),
		)
	case ScreenPlanPreview, ScreenExcluded, ScreenSessionHistory:
		hints = append(hints,
			ui.KeyBinding("↑/↓", "scroll", ui.ColorCyan),
			ui.KeyBinding("enter", "back", ui.ColorGreen),
		)
	case ScreenConfirmation:
		hints = append(hints,
			ui.KeyBinding("←/→", "select", ui.ColorCyan),
			ui.KeyBinding("y/n", "confirm", ui.ColorGreen),
		)
	case ScreenSummary, ScreenError:
		hints = append(hints,
			ui.KeyBinding("enter", "menu", ui.ColorGreen),
			ui.KeyBinding("q", "quit", ui.ColorRed),
		)
	default:
		hints = append(hints, ui.KeyBinding("ctrl+c", "quit", ui.ColorRed))
	}

	barStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorSubtle()).
		Padding(0, 2)

	versionStyle := lipgloss.NewStyle().Foreground(ui.ColorSubtle())
	bar := strings.Join(hints, "   ") + "   " + versionStyle.Render(m.version)

	return barStyle.Render(bar)
}
