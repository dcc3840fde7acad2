package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logoCmd groups the logo flows.
var logoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Set the icon used by new creatives",
	Long:  `Stores a logo media id in the Config sheet (cell B3). New creatives use it as their icon asset.`,
}

var logoFromCreativeCmd = &cobra.Command{
	Use:   "from-creative [creative-id]",
	Short: "Copy the icon of an existing creative",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogo(cmd.Context(), func(a *app) (string, error) {
			return a.logo.FromCreative(cmd.Context(), args[0])
		})
	},
}

var logoFromURLCmd = &cobra.Command{
	Use:   "from-url [url]",
	Short: "Upload a logo from a public URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogo(cmd.Context(), func(a *app) (string, error) {
			return a.logo.FromURL(cmd.Context(), args[0])
		})
	},
}

var logoFromDriveCmd = &cobra.Command{
	Use:   "from-drive [file-id-or-url]",
	Short: "Upload a logo from a Drive file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogo(cmd.Context(), func(a *app) (string, error) {
			return a.logo.FromDrive(cmd.Context(), args[0])
		})
	},
}

func init() {
	logoCmd.AddCommand(logoFromCreativeCmd, logoFromURLCmd, logoFromDriveCmd)
	RootCmd.AddCommand(logoCmd)
}

func runLogo(ctx context.Context, set func(a *app) (string, error)) error {
	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	mediaID, err := set(a)
	if err != nil {
		return err
	}
	a.logger.Info("Logo asset id saved", zap.String("media_id", mediaID))
	return nil
}
