package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"creative-sync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRun     bool
	yesConfirm bool
)

// processCmd runs cleanup followed by reconcile.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Retire removed rows, then create and update creatives",
	Long: `Runs the full feed pass: rows marked "Remove" are paused, unassigned and
optionally deleted, then every remaining row is reconciled with DV360.

Examples:
  # Show what would happen
  creative-sync process --dry-run

  # Run, confirming creative deletion without a prompt
  creative-sync process --yes`,
	RunE: runProcess,
}

// cleanupCmd runs the removal pass alone.
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Retire rows marked for removal",
	RunE:  runCleanup,
}

// planCmd prints the classification of every row.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what a process run would do",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.feed.PlanFeed(cmd.Context())
		if err != nil {
			return err
		}
		printReport(a.logger, report)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{processCmd, cleanupCmd} {
		c.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without changing anything")
		c.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm creative deletion (non-interactive)")
		RootCmd.AddCommand(c)
	}
	RootCmd.AddCommand(planCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if proceed, err := confirmPlan(cmd, a); err != nil || !proceed {
		return err
	}

	res, err := a.feed.ProcessFeed(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to process feed: %w", err)
	}
	printReport(a.logger, res.Cleanup)
	printReport(a.logger, res.Reconcile)
	return nil
}

func runCleanup(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if proceed, err := confirmPlan(cmd, a); err != nil || !proceed {
		return err
	}

	report, err := a.feed.CleanupFeed(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to clean up feed: %w", err)
	}
	printReport(a.logger, report)
	return nil
}

// confirmPlan prints the plan on --dry-run and asks before any creative is deleted.
func confirmPlan(cmd *cobra.Command, a *app) (bool, error) {
	plan, err := a.feed.PlanFeed(cmd.Context())
	if err != nil {
		return false, fmt.Errorf("failed to plan: %w", err)
	}

	if dryRun {
		printReport(a.logger, plan)
		a.logger.Info("Dry-run mode: No changes were made.")
		return false, nil
	}

	if plan.Summary.Deleted == 0 {
		return true, nil
	}

	a.logger.Warn("Creatives will be archived and deleted", zap.Int("count", plan.Summary.Deleted))
	if !confirmDestructiveAction() {
		a.logger.Warn("Operation cancelled by user. No changes were made.")
		return false, nil
	}
	return true, nil
}

// printReport logs a pass summary and every failed row.
func printReport(l *zap.Logger, r *reconcile.Report) {
	if r == nil {
		return
	}
	s := r.Summary
	l.Info("Feed report",
		zap.String("pass", r.Pass),
		zap.Bool("dry_run", r.DryRun),
		zap.Int("rows", s.Rows),
		zap.Int("created", s.Created),
		zap.Int("updated", s.Updated),
		zap.Int("unchanged", s.Unchanged),
		zap.Int("removed", s.Removed),
		zap.Int("deleted", s.Deleted),
		zap.Int("failed", s.Failed),
		zap.Duration("duration", r.Duration),
	)

	for _, res := range r.Results {
		if r.DryRun {
			l.Info("Planned",
				zap.Int("row", res.Position),
				zap.String("name", res.Name),
				zap.String("action", string(res.Action)),
				zap.String("error", res.Error),
			)
			continue
		}
		if res.Error != "" {
			l.Warn("Row failed",
				zap.Int("row", res.Position),
				zap.String("name", res.Name),
				zap.String("action", string(res.Action)),
				zap.String("error", res.Error),
			)
		}
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
