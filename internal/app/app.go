package app

import (
	"math"
	"math/rand"
	"time"

	"github.com/wahlandcase/attuned.commitsort/internal/config"
	"github.com/wahlandcase/attuned.commitsort/internal/models"
	"github.com/wahlandcase/attuned.commitsort/internal/plan"
	"github.com/wahlandcase/attuned.commitsort/internal/ui"
	"github.com/wahlandcase/attuned.commitsort/internal/update"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfettiParticle represents a single confetti particle
type ConfettiParticle struct {
	X, Y   float64
	VX, VY float64
	Char   rune
	Color  lipgloss.Color
}

// sessionCommit holds info about a commit recorded during this session
type sessionCommit struct {
	repoName  string
	subject   string
	category  string
	hash      string
	createdAt time.Time
}

// Model is the main application state
type Model struct {
	// Configuration
	config     *config.Config
	repoPath   string
	dryRun     bool
	testUpdate bool

	// Navigation
	screen     Screen
	menuIndex  int
	shouldQuit bool

	// Scan state
	scan          *plan.Scan
	nothingToDo   bool // Scan found zero groups
	groupSelected []bool
	groupIndex    int
	previewScroll int
	excludedFrom  Screen // Screen to return to from the excluded view

	// Apply state
	applyResults []models.CommitResult
	applyCurrent int
	applyTotal   int
	applyStep    string
	applyChan    chan applyProgressMsg

	// UI state
	confirmSelection int // 0=Yes, 1=No
	errorMessage     string
	loadingMessage   string
	spinnerFrame     int

	// Update state
	version               string
	updateAvailable       *update.Release // Non-nil if update available
	updateSelection       int             // 0=Update now, 1=Skip, 2=Skip this version
	updateCheckInProgress bool

	// Animation state
	confetti      []ConfettiParticle
	pulsePhase    float64 // 0.0 - 2*PI for sine wave
	typewriterPos int     // Characters revealed so far

	// Session history (survives reset)
	sessionCommits []sessionCommit
	historyScroll  int

	// Window size
	width  int
	height int
}

// New creates a new application model
func New(cfg *config.Config, repoPath string, dryRun, testUpdate bool, version string) Model {
	return Model{
		config:         cfg,
		repoPath:       repoPath,
		dryRun:         dryRun,
		testUpdate:     testUpdate,
		version:        version,
		screen:         ScreenMainMenu,
		menuIndex:      0,
		width:          80,
		height:         24,
		sessionCommits: loadHistory(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(),
	}
	if !m.dryRun && m.config.ShouldCheckForUpdate() {
		cmds = append(cmds, checkUpdateCmd(m.version, m.config.Update.Repo))
	}
	// Test update flag shows fake update prompt
	if m.testUpdate {
		cmds = append(cmds, func() tea.Msg {
			return updateCheckResult{release: &update.Release{TagName: "v99.0.0"}}
		})
	}
	return tea.Batch(cmds...)
}

// tickMsg is sent on each tick for animations
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// selectedGroups returns the groups toggled on, keeping plan order
func (m *Model) selectedGroups() []models.ChangeGroup {
	if m.scan == nil {
		return nil
	}
	var groups []models.ChangeGroup
	for i, g := range m.scan.Plan.Groups {
		if i < len(m.groupSelected) && m.groupSelected[i] {
			groups = append(groups, g)
		}
	}
	return groups
}

// selectedFileCount returns the number of files across toggled groups
func (m *Model) selectedFileCount() int {
	n := 0
	for _, g := range m.selectedGroups() {
		n += len(g.Members)
	}
	return n
}

// spawnConfetti creates confetti particles for celebration
func (m *Model) spawnConfetti() {
	colors := []lipgloss.Color{
		ui.ColorCyan,
		ui.ColorMagenta,
		ui.ColorYellow,
		ui.ColorGreen,
		ui.ColorRed,
		ui.ColorWhite,
	}
	chars := []rune{'*', '•', '✦', '✧', '◆', '◇', '▪', '♦', '★', '☆'}

	m.confetti = nil
	for i := 0; i < 40; i++ {
		angle := (float64(i) / 40.0) * math.Pi * 2.0
		speed := 2.0 + float64(i%5)*0.5
		m.confetti = append(m.confetti, ConfettiParticle{
			X:     40.0, // center-ish
			Y:     5.0,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle)*speed - 2.0, // bias upward initially
			Char:  chars[rand.Intn(len(chars))],
			Color: colors[rand.Intn(len(colors))],
		})
	}
	m.typewriterPos = 0
}

// updateAnimations updates all animation state
func (m *Model) updateAnimations() {
	// Update pulse phase (smooth sine wave)
	m.pulsePhase = math.Mod(m.pulsePhase+0.08, 2.0*math.Pi)

	// Update confetti physics
	for i := range m.confetti {
		m.confetti[i].X += m.confetti[i].VX
		m.confetti[i].Y += m.confetti[i].VY
		m.confetti[i].VY += 0.15 // gravity
		m.confetti[i].VX *= 0.98 // air resistance
	}

	// Remove particles that fell off screen
	filtered := m.confetti[:0]
	for _, p := range m.confetti {
		if p.Y < 50.0 {
			filtered = append(filtered, p)
		}
	}
	m.confetti = filtered

	// Typewriter effect - reveal more characters on the summary screen
	if m.screen == ScreenSummary && m.typewriterPos < 100 {
		m.typewriterPos++
	}
}
