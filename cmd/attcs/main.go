package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.commitsort/internal/termfix"

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wahlandcase/attuned.commitsort/internal/app"
	"github.com/wahlandcase/attuned.commitsort/internal/config"
	"github.com/wahlandcase/attuned.commitsort/internal/git"
	"github.com/wahlandcase/attuned.commitsort/internal/logging"
	"github.com/wahlandcase/attuned.commitsort/internal/models"
	"github.com/wahlandcase/attuned.commitsort/internal/plan"
	"github.com/wahlandcase/attuned.commitsort/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	dryRun     bool
	planOnly   bool
	assumeYes  bool
	repoPath   string
	testUpdate bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "attcs",
		Short: "TUI for grouping working tree changes into atomic commits",
		Long: `attcs scans a git working tree, filters out sensitive files,
groups the remaining changes by category, and commits each group
with a generated message. Run without flags for the interactive TUI.`,
		Version: Version,
		RunE:    run,
	}

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate operations without making changes")
	rootCmd.Flags().BoolVar(&planOnly, "plan", false, "Print the commit plan and exit without committing")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Apply the full plan without the TUI")
	rootCmd.Flags().StringVar(&repoPath, "path", ".", "Path inside the repository to operate on")
	rootCmd.Flags().BoolVar(&testUpdate, "test-update", false, "Show the update prompt with a fake release")
	_ = rootCmd.Flags().MarkHidden("test-update")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if planOnly {
		return printPlan(cfg)
	}
	if assumeYes {
		return applyPlan(cfg)
	}

	// The TUI owns the terminal; route log output away from it
	logging.SetOutput(io.Discard)

	model := app.New(cfg, repoPath, dryRun, testUpdate, Version)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

// printPlan scans the repository and prints the ordered plan without committing
func printPlan(cfg *config.Config) error {
	scan, err := plan.ScanRepository(repoPath, cfg)
	if err != nil && !errors.Is(err, plan.ErrNothingToCommit) {
		return err
	}

	if errors.Is(err, plan.ErrNothingToCommit) {
		fmt.Println("Nothing to commit.")
		printExcluded(scan)
		return nil
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorCyan)
	fmt.Println(header.Render(fmt.Sprintf("Commit plan for %s", scan.RepoName)))
	fmt.Println()

	for i, g := range scan.Plan.Groups {
		subjectStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.CategoryColor(g.Category))
		fmt.Printf("%d. %s\n", i+1, subjectStyle.Render(plan.Subject(g, cfg.Commits.SubjectLimit)))
		for _, member := range g.Members {
			fmt.Printf("   %s %s\n", member.Status.Symbol(), member.Path)
		}
		fmt.Println()
	}

	printExcluded(scan)
	return nil
}

func printExcluded(scan *plan.Scan) {
	if scan == nil || len(scan.Excluded) == 0 {
		return
	}
	subtle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
	fmt.Println(subtle.Render(fmt.Sprintf("%d files excluded by policy:", len(scan.Excluded))))
	for _, ex := range scan.Excluded {
		fmt.Printf("  %s  (%s)\n", ex.Record.Path, ex.Reason)
	}
}

// applyPlan scans and commits every group without the TUI
func applyPlan(cfg *config.Config) error {
	log := logging.NewRunLogger()

	scan, err := plan.ScanRepository(repoPath, cfg)
	if err != nil {
		if errors.Is(err, plan.ErrNothingToCommit) {
			log.Info("nothing to commit")
			return nil
		}
		return err
	}

	log.WithField("repo", scan.RepoName).
		WithField("groups", len(scan.Plan.Groups)).
		WithField("files", scan.Plan.TotalFiles()).
		Info("applying commit plan")

	committer := git.NewCommitter(scan.RepoRoot)
	seq := plan.NewSequencer(committer,
		plan.WithLimits(cfg.Commits.SubjectLimit, cfg.Commits.BodyWrap),
		plan.WithDryRun(dryRun))

	results, err := seq.Apply(scan.Plan, func(index int, group models.ChangeGroup) {
		log.WithField("index", index+1).
			WithField("category", group.Category.String()).
			WithField("files", len(group.Members)).
			Info("committing group")
	})

	for _, res := range results {
		entry := log.WithField("subject", res.Subject)
		switch {
		case models.IsCommitted(res.Status):
			if hash := models.CommitHash(res.Status); hash != "" {
				entry = entry.WithField("hash", hash)
			}
			entry.Info("committed")
		case models.IsSkipped(res.Status):
			entry.WithField("reason", models.StatusReason(res.Status)).Warn("skipped")
		case models.IsRejected(res.Status):
			entry.WithField("reason", models.StatusReason(res.Status)).Error("rejected")
		}
	}

	if err != nil {
		var rejected *plan.RejectedError
		if errors.As(err, &rejected) {
			log.WithField("applied", rejected.LastApplied+1).
				WithField("total", len(scan.Plan.Groups)).
				Error("sequence halted")
		}
		return err
	}

	log.WithField("commits", len(results)).Info("plan applied")
	return nil
}
