package cmd

import (
	"fmt"
	"os"

	"creative-sync/core/config"
	"creative-sync/core/google"

	"github.com/spf13/cobra"
)

// authoriseCmd runs the OAuth consent flow and caches the token.
var authoriseCmd = &cobra.Command{
	Use:   "authorise",
	Short: "Authorise access to Sheets, Drive and DV360",
	Long: `Opens the Google consent flow for the configured OAuth client
(GOOGLE_CREDENTIALS_FILE) and stores the resulting token in GOOGLE_TOKEN_FILE.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		oauth, err := google.OAuthConfig(cfg.Google.CredentialsFile)
		if err != nil {
			return err
		}
		return google.Authorise(cmd.Context(), oauth, cfg.Google.TokenFile, os.Stdin, os.Stdout)
	},
}

func init() {
	RootCmd.AddCommand(authoriseCmd)
}
