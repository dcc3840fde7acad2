package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"creative-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "creative-sync",
	Short: "Feed to DV360 creative sync",
	Long: `creative-sync keeps DV360 native creatives and their line item assignments
in step with a Google Sheets feed. Rows are created, updated or retired one at a time
and the outcome is written back to the sheet.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. An interrupt cancels the command context,
// which stops the current remote call; the row it belongs to is marked Failed.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("Command failed", zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}
