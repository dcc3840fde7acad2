package feed

import (
	"context"
	"fmt"

	"creative-sync/core/utils"
)

// Rows of column B in the Config sheet.
const (
	settingAdvertiserID = iota + 1
	settingCaptionURL
	settingLogoAssetID
	settingDriveIdentifier
	settingDeleteOnRemove

	numSettings = settingDeleteOnRemove
)

// settingsColumn is the 1-based column holding setting values.
const settingsColumn = 2

// RunConfig is the per-run configuration read from the Config sheet.
// It is loaded once at the start of a run and passed explicitly to every step.
type RunConfig struct {
	AdvertiserID           string `json:"advertiser_id"`
	CaptionURL             string `json:"caption_url"`
	LogoAssetID            string `json:"logo_asset_id"`
	DriveIdentifier        string `json:"drive_identifier"`
	DeleteCreativeOnRemove bool   `json:"delete_creative_on_remove"`
}

// Validate checks the settings every remote call depends on.
func (c RunConfig) Validate() error {
	if c.AdvertiserID == "" {
		return fmt.Errorf("advertiser id is not set in the config sheet")
	}
	return nil
}

// LoadRunConfig reads column B of the config sheet.
func LoadRunConfig(ctx context.Context, table Table, sheet string) (RunConfig, error) {
	values, err := table.GetRange(ctx, sheet, 1, settingsColumn, numSettings, 1)
	if err != nil {
		return RunConfig{}, fmt.Errorf("failed to read config sheet %s: %w", sheet, err)
	}

	cell := func(row int) any {
		i := row - 1
		if i < len(values) && len(values[i]) > 0 {
			return values[i][0]
		}
		return nil
	}

	return RunConfig{
		AdvertiserID:           utils.ToString(cell(settingAdvertiserID)),
		CaptionURL:             utils.ToString(cell(settingCaptionURL)),
		LogoAssetID:            utils.ToString(cell(settingLogoAssetID)),
		DriveIdentifier:        utils.ToString(cell(settingDriveIdentifier)),
		DeleteCreativeOnRemove: utils.ToBool(cell(settingDeleteOnRemove)),
	}, nil
}

// SaveLogoAssetID stores the logo media id in the config sheet.
func SaveLogoAssetID(ctx context.Context, table Table, sheet, mediaID string) error {
	if err := table.SetRange(ctx, sheet, settingLogoAssetID, settingsColumn, [][]any{{mediaID}}); err != nil {
		return fmt.Errorf("failed to save logo asset id: %w", err)
	}
	return nil
}
