// Package config provides configuration management for the creative sync service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each setting as `default` struct tags
// and are registered by reflection, so every key is also reachable through the
// environment (GOOGLE_SPREADSHEET_ID, DV360_TIMEOUT_SECONDS, LOCK_REDIS_ADDR, ...).
//
// # Configuration Structure
//
// The Config struct is divided into subsections owned by the packages that use them:
//   - Server: HTTP port and API key
//   - Log: logging level and format
//   - Google: OAuth credentials, token file, spreadsheet id and sheet names
//   - DV360: optional API endpoint override, request timeout
//   - Storage: S3/MinIO credentials for s3:// asset folders
//   - GCS: Cloud Storage toggle for gs:// asset folders
//   - Lock: optional Redis address for the cross-process run lock
//   - Metrics: Prometheus toggle
//
// Per-run settings (advertiser, caption URL, logo asset, removal behaviour) are not
// part of this package. They are read from the Config sheet at the start of each run.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Google.SpreadsheetID)
package config
