package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/wahlandcase/attuned.commitsort/internal/config"
	"github.com/wahlandcase/attuned.commitsort/internal/filter"
	"github.com/wahlandcase/attuned.commitsort/internal/git"
	"github.com/wahlandcase/attuned.commitsort/internal/grouping"
	"github.com/wahlandcase/attuned.commitsort/internal/models"
	"github.com/wahlandcase/attuned.commitsort/internal/plan"
	"github.com/wahlandcase/attuned.commitsort/internal/update"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type scanResult struct {
	scan    *plan.Scan
	nothing bool // Scan succeeded but produced zero groups
	err     error
}

type applyProgressMsg struct {
	index    int
	category models.Category
}

type applyCompleteResult struct {
	results []models.CommitResult
	err     error
}

// Update check messages
type updateCheckResult struct {
	release *update.Release
	err     error
}

type updateDownloadResult struct {
	success bool
	version string
	err     error
}

// checkUpdateCmd checks for available updates
func checkUpdateCmd(currentVersion, repo string) tea.Cmd {
	return func() tea.Msg {
		release, err := update.CheckForUpdate(currentVersion, repo)
		return updateCheckResult{release: release, err: err}
	}
}

// downloadUpdateCmd downloads and installs an update
func downloadUpdateCmd(release *update.Release, repo string) tea.Cmd {
	return func() tea.Msg {
		err := update.DownloadAndInstall(release, repo)
		if err != nil {
			return updateDownloadResult{success: false, err: err}
		}
		return updateDownloadResult{success: true, version: update.VersionDisplay(release.TagName)}
	}
}

// openConfigCmd opens the config folder in the system file manager
func openConfigCmd() tea.Cmd {
	return func() tea.Msg {
		configPath, err := config.Path()
		if err != nil {
			return nil
		}
		configDir := filepath.Dir(configPath)

		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			// macOS: open folder in Finder, select the file
			cmd = exec.Command("open", "-R", configPath)
		case "linux":
			// Check if WSL
			if isWSL() {
				// Convert Linux path to Windows path and open in Explorer
				winPath, err := exec.Command("wslpath", "-w", configDir).Output()
				if err == nil {
					cmd = exec.Command("explorer.exe", strings.TrimSpace(string(winPath)))
				}
			} else {
				cmd = exec.Command("xdg-open", configDir)
			}
		}

		if cmd != nil {
			cmd.Start()
		}
		return nil
	}
}

func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}

// scanRepoCmd runs the read-only pipeline: read, filter, group, order
func scanRepoCmd(cfg *config.Config, repoPath string, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		// Dry run mode: build the plan from a fixed sample tree
		if dryRun {
			time.Sleep(800 * time.Millisecond)
			return scanResult{scan: sampleScan(cfg)}
		}

		scan, err := plan.ScanRepository(repoPath, cfg)
		if err == plan.ErrNothingToCommit {
			return scanResult{scan: scan, nothing: true}
		}
		if err != nil {
			return scanResult{err: err}
		}
		return scanResult{scan: scan}
	}
}

// sampleScan feeds representative fake changes through the real pipeline so
// dry runs exercise filtering, grouping and ordering exactly as a live scan
func sampleScan(cfg *config.Config) *plan.Scan {
	records := []models.ChangeRecord{
		models.NewChangeRecord(".env", models.StatusUntracked,
			"--- a/.env\n+++ b/.env\n@@ -0,0 +1 @@\n+API_KEY = \"c2VjcmV0LXNhbXBsZS1rZXk\"\n"),
		models.NewChangeRecord(".github/workflows/ci.yml", models.StatusModified,
			"--- a/.github/workflows/ci.yml\n+++ b/.github/workflows/ci.yml\n@@ -1 +1 @@\n-  go-version: 1.24\n+  go-version: 1.25\n"),
		models.NewChangeRecord("README.md", models.StatusModified,
			"--- a/README.md\n+++ b/README.md\n@@ -1 +1,2 @@\n # attuned\n+Setup notes.\n"),
		models.NewChangeRecord("internal/auth/login.go", models.StatusModified,
			"--- a/internal/auth/login.go\n+++ b/internal/auth/login.go\n@@ -10 +10,2 @@\n-\treturn session\n+\tsession.Refresh()\n+\treturn session\n"),
		models.NewChangeRecord("internal/auth/login_test.go", models.StatusModified,
			"--- a/internal/auth/login_test.go\n+++ b/internal/auth/login_test.go\n@@ -5 +5,2 @@\n+\tt.Run(\"refresh\", testRefresh)\n"),
		models.NewChangeRecord("internal/auth/token.go", models.StatusUntracked,
			"--- a/internal/auth/token.go\n+++ b/internal/auth/token.go\n@@ -0,0 +1 @@\n+package auth\n"),
	}

	kept, excluded := filter.Apply(records, filter.PolicyFrom(cfg))
	groups := grouping.BuildGroups(kept)

	scan := &plan.Scan{
		RepoName: "sample-repo",
		RepoRoot: "",
		Records:  kept,
		Excluded: excluded,
	}
	if commitPlan, err := plan.Build(groups, cfg.CommitOrder()); err == nil {
		scan.Plan = commitPlan
	}
	return scan
}

// applyPlanCmd commits the selected groups in plan order.
// Progress is streamed through ch; the listener subscription re-arms itself
// until the channel closes.
func applyPlanCmd(scan *plan.Scan, groups []models.ChangeGroup, cfg *config.Config, dryRun bool, ch chan applyProgressMsg) tea.Cmd {
	return func() tea.Msg {
		defer close(ch)

		committer := git.NewCommitter(scan.RepoRoot)
		sequencer := plan.NewSequencer(committer,
			plan.WithLimits(cfg.Commits.SubjectLimit, cfg.Commits.BodyWrap),
			plan.WithDryRun(dryRun),
		)

		if dryRun {
			// Let the progress bar be visible in simulation
			results, err := sequencer.Apply(models.CommitPlan{Groups: groups}, func(i int, g models.ChangeGroup) {
				ch <- applyProgressMsg{index: i, category: g.Category}
				time.Sleep(400 * time.Millisecond)
			})
			return applyCompleteResult{results: results, err: err}
		}

		results, err := sequencer.Apply(models.CommitPlan{Groups: groups}, func(i int, g models.ChangeGroup) {
			ch <- applyProgressMsg{index: i, category: g.Category}
		})
		return applyCompleteResult{results: results, err: err}
	}
}

// listenForApplyProgress creates a subscription that listens to the progress channel
func listenForApplyProgress(ch chan applyProgressMsg) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
