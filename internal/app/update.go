package app

import (
	"time"

	"github.com/wahlandcase/attuned.commitsort/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		m.updateAnimations()
		return m, tickCmd()

	// Task result messages
	case scanResult:
		return m.handleScanResult(msg)

	case applyProgressMsg:
		m.applyCurrent = msg.index
		m.applyStep = "Committing " + msg.category.Title() + " group..."
		// Continue listening for more progress updates
		return m, listenForApplyProgress(m.applyChan)

	case applyCompleteResult:
		return m.handleApplyComplete(msg)

	case updateCheckResult:
		return m.handleUpdateCheckResult(msg)

	case updateDownloadResult:
		return m.handleUpdateDownloadResult(msg)
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenMainMenu:
		return m.handleMainMenuKey(msg)
	case ScreenPlanReview:
		return m.handlePlanReviewKey(msg)
	case ScreenPlanPreview:
		return m.handlePlanPreviewKey(msg)
	case ScreenExcluded:
		return m.handleExcludedKey(msg)
	case ScreenConfirmation:
		return m.handleConfirmationKey(msg)
	case ScreenSummary:
		return m.handleSummaryKey(msg)
	case ScreenError:
		return m.handleErrorKey(msg)
	case ScreenUpdatePrompt:
		return m.handleUpdatePromptKey(msg)
	case ScreenSessionHistory:
		return m.handleSessionHistoryKey(msg)
	}

	return m, nil
}

func (m Model) handleMainMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		} else {
			m.menuIndex = 4 // Wrap to bottom
		}
	case "down", "j":
		if m.menuIndex < 4 {
			m.menuIndex++
		} else {
			m.menuIndex = 0 // Wrap to top
		}
	case "c":
		return m, openConfigCmd()
	case "enter":
		return m.selectMainMenuItem()
	case "1":
		m.menuIndex = 0
		return m.selectMainMenuItem()
	case "2":
		m.menuIndex = 1
		return m.selectMainMenuItem()
	case "3":
		m.menuIndex = 2
		return m.selectMainMenuItem()
	case "4":
		m.menuIndex = 3
		return m.selectMainMenuItem()
	case "5":
		m.menuIndex = 4
		return m.selectMainMenuItem()
	}
	return m, nil
}

func (m Model) selectMainMenuItem() (tea.Model, tea.Cmd) {
	switch m.menuIndex {
	case 0: // Organize & Commit
		m.screen = ScreenScanning
		m.loadingMessage = "Scanning working tree..."
		m.previewScroll = 0
		return m, scanRepoCmd(m.config, m.repoPath, m.dryRun)
	case 1: // Preview Plan
		m.screen = ScreenScanning
		m.loadingMessage = "Scanning working tree..."
		m.previewScroll = 0
		m.excludedFrom = ScreenPlanPreview
		return m, scanRepoCmd(m.config, m.repoPath, m.dryRun)
	case 2: // Excluded Files
		m.screen = ScreenScanning
		m.loadingMessage = "Scanning working tree..."
		m.excludedFrom = ScreenMainMenu
		return m, scanRepoCmd(m.config, m.repoPath, m.dryRun)
	case 3: // Session History
		m.screen = ScreenSessionHistory
		m.historyScroll = 0
	case 4: // Quit
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

// handleScanResult routes a finished scan to the screen the user asked for
func (m Model) handleScanResult(msg scanResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.screen = ScreenError
		m.errorMessage = msg.err.Error()
		return m, nil
	}

	m.scan = msg.scan
	m.nothingToDo = msg.nothing

	switch m.menuIndex {
	case 1: // Preview Plan
		m.screen = ScreenPlanPreview
		return m, nil
	case 2: // Excluded Files
		m.screen = ScreenExcluded
		return m, nil
	}

	if msg.nothing {
		// Zero groups: show the preview screen, which explains the no-op
		m.screen = ScreenPlanPreview
		return m, nil
	}

	// Organize & Commit: all groups start selected
	m.groupSelected = make([]bool, len(m.scan.Plan.Groups))
	for i := range m.groupSelected {
		m.groupSelected[i] = true
	}
	m.groupIndex = 0
	m.screen = ScreenPlanReview
	return m, nil
}

func (m Model) handlePlanReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	groups := m.scan.Plan.Groups

	switch msg.String() {
	case "q", "esc":
		m.screen = ScreenMainMenu
		m.menuIndex = 0
	case "up", "k":
		if m.groupIndex > 0 {
			m.groupIndex--
		} else {
			m.groupIndex = len(groups) - 1
		}
	case "down", "j":
		if m.groupIndex < len(groups)-1 {
			m.groupIndex++
		} else {
			m.groupIndex = 0
		}
	case " ":
		if m.groupIndex < len(m.groupSelected) {
			m.groupSelected[m.groupIndex] = !m.groupSelected[m.groupIndex]
		}
	case "a":
		allOn := true
		for _, sel := range m.groupSelected {
			if !sel {
				allOn = false
				break
			}
		}
		for i := range m.groupSelected {
			m.groupSelected[i] = !allOn
		}
	case "x":
		if len(m.scan.Excluded) > 0 {
			m.excludedFrom = ScreenPlanReview
			m.screen = ScreenExcluded
		}
	case "enter":
		if len(m.selectedGroups()) > 0 {
			m.confirmSelection = 0
			m.screen = ScreenConfirmation
		}
	}
	return m, nil
}

func (m Model) handlePlanPreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.screen = ScreenMainMenu
		m.menuIndex = 0
	case "up", "k":
		if m.previewScroll > 0 {
			m.previewScroll--
		}
	case "down", "j":
		m.previewScroll++
	case "x":
		if m.scan != nil && len(m.scan.Excluded) > 0 {
			m.excludedFrom = ScreenPlanPreview
			m.screen = ScreenExcluded
		}
	}
	return m, nil
}

func (m Model) handleExcludedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.screen = m.excludedFrom
		if m.screen == ScreenMainMenu {
			m.menuIndex = 0
		}
	}
	return m, nil
}

func (m Model) handleConfirmationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "n":
		m.screen = ScreenPlanReview
	case "left", "h", "right", "l", "tab":
		m.confirmSelection = 1 - m.confirmSelection
	case "y":
		return m.startApply()
	case "enter":
		if m.confirmSelection == 0 {
			return m.startApply()
		}
		m.screen = ScreenPlanReview
	}
	return m, nil
}

// startApply kicks off the sequential commit run
func (m Model) startApply() (tea.Model, tea.Cmd) {
	groups := m.selectedGroups()
	m.applyTotal = len(groups)
	m.applyCurrent = 0
	m.applyStep = "Starting..."
	m.applyResults = nil
	m.applyChan = make(chan applyProgressMsg, len(groups)+1)
	m.screen = ScreenCommitting

	return m, tea.Batch(
		applyPlanCmd(m.scan, groups, m.config, m.dryRun, m.applyChan),
		listenForApplyProgress(m.applyChan),
	)
}

func (m Model) handleApplyComplete(msg applyCompleteResult) (tea.Model, tea.Cmd) {
	m.applyResults = msg.results
	m.applyChan = nil

	// Record successful commits in session history
	for _, res := range msg.results {
		if models.IsCommitted(res.Status) {
			m.sessionCommits = append(m.sessionCommits, sessionCommit{
				repoName:  m.scan.RepoName,
				subject:   res.Subject,
				category:  res.Group.Category.String(),
				hash:      models.CommitHash(res.Status),
				createdAt: time.Now(),
			})
		}
	}
	if !m.dryRun {
		saveHistory(m.sessionCommits)
	}

	m.screen = ScreenSummary
	if msg.err == nil {
		m.spawnConfetti()
	}
	return m, nil
}

func (m Model) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "enter", "esc":
		// Back to the menu with fresh state; the next scan starts over
		m.scan = nil
		m.groupSelected = nil
		m.applyResults = nil
		m.confetti = nil
		m.screen = ScreenMainMenu
		m.menuIndex = 0
	}
	return m, nil
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "enter", "esc":
		m.errorMessage = ""
		m.screen = ScreenMainMenu
		m.menuIndex = 0
	}
	return m, nil
}

func (m Model) handleSessionHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.screen = ScreenMainMenu
		m.menuIndex = 0
	case "up", "k":
		if m.historyScroll > 0 {
			m.historyScroll--
		}
	case "down", "j":
		m.historyScroll++
	}
	return m, nil
}

func (m Model) handleUpdateCheckResult(msg updateCheckResult) (tea.Model, tea.Cmd) {
	m.updateCheckInProgress = false
	m.config.RecordUpdateCheck()
	_ = m.config.Save()

	if msg.err != nil || msg.release == nil {
		return m, nil
	}
	if m.config.Update.SkippedVersion == msg.release.TagName {
		return m, nil
	}

	m.updateAvailable = msg.release
	m.updateSelection = 0
	m.screen = ScreenUpdatePrompt
	return m, nil
}

func (m Model) handleUpdatePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.updateSelection > 0 {
			m.updateSelection--
		}
	case "down", "j":
		if m.updateSelection < 2 {
			m.updateSelection++
		}
	case "esc":
		m.updateAvailable = nil
		m.screen = ScreenMainMenu
	case "enter":
		switch m.updateSelection {
		case 0: // Update now
			m.screen = ScreenUpdating
			return m, downloadUpdateCmd(m.updateAvailable, m.config.Update.Repo)
		case 1: // Skip
			m.updateAvailable = nil
			m.screen = ScreenMainMenu
		case 2: // Skip this version
			m.config.Update.SkippedVersion = m.updateAvailable.TagName
			_ = m.config.Save()
			m.updateAvailable = nil
			m.screen = ScreenMainMenu
		}
	}
	return m, nil
}

func (m Model) handleUpdateDownloadResult(msg updateDownloadResult) (tea.Model, tea.Cmd) {
	if !msg.success {
		m.screen = ScreenError
		if msg.err != nil {
			m.errorMessage = "Update failed: " + msg.err.Error()
		} else {
			m.errorMessage = "Update failed"
		}
		return m, nil
	}

	// Updated binary takes effect on next launch
	m.shouldQuit = true
	return m, tea.Quit
}
