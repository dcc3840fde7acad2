package google

// Config holds Google credentials and the spreadsheet the feed lives in.
type Config struct {
	// CredentialsFile is the OAuth client secret downloaded from the Cloud console.
	CredentialsFile string `mapstructure:"credentials_file" default:"credentials.json"`
	// TokenFile caches the user token written by the authorise command.
	TokenFile string `mapstructure:"token_file" default:"token.json"`
	// SpreadsheetID accepts a bare id or a full spreadsheet URL.
	SpreadsheetID string `mapstructure:"spreadsheet_id" default:""`
	FeedSheet     string `mapstructure:"feed_sheet" default:"Feed"`
	ConfigSheet   string `mapstructure:"config_sheet" default:"Config"`
	LogSheet      string `mapstructure:"log_sheet" default:"Log"`
}
