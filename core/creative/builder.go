package creative

import (
	"fmt"
	"strconv"
	"strings"

	"creative-sync/core/dv360"
	"creative-sync/core/feed"
)

// DefaultFilename names uploads whose row has no filename.
const DefaultFilename = "asset.jpg"

// Static holds the values every creative shares, read from the Config sheet.
type Static struct {
	LogoAssetID string
	CaptionURL  string
}

// StaticFrom picks the creative constants out of a run configuration.
func StaticFrom(cfg feed.RunConfig) Static {
	return Static{LogoAssetID: cfg.LogoAssetID, CaptionURL: cfg.CaptionURL}
}

// Build turns a feed row into a native creative payload. mainMediaID is the
// uploaded main image. Build does no I/O.
func Build(row feed.Row, mainMediaID string, static Static) (*dv360.Creative, error) {
	width, height, err := size(row)
	if err != nil {
		return nil, err
	}

	return &dv360.Creative{
		DisplayName:   row.Name,
		EntityStatus:  dv360.StatusActive,
		CreativeType:  dv360.CreativeTypeNative,
		HostingSource: dv360.HostingSourceHosted,
		Dimensions: &dv360.Dimensions{
			WidthPixels:  width,
			HeightPixels: height,
		},
		Assets: []dv360.AssetAssociation{
			{Asset: dv360.Asset{MediaID: mainMediaID}, Role: dv360.RoleMain},
			{Asset: dv360.Asset{Content: Truncate(row.Headline, HeadlineMaxLength)}, Role: dv360.RoleHeadline},
			{Asset: dv360.Asset{Content: Truncate(row.Body, BodyMaxLength)}, Role: dv360.RoleBody},
			{Asset: dv360.Asset{MediaID: static.LogoAssetID}, Role: dv360.RoleIcon},
			{Asset: dv360.Asset{Content: static.CaptionURL}, Role: dv360.RoleCaptionURL},
			{Asset: dv360.Asset{Content: Truncate(row.CallToAction, CallToActionMaxLength)}, Role: dv360.RoleCallToAction},
		},
		ExitEvents: []dv360.ExitEvent{
			{Type: dv360.ExitEventTypeDefault, URL: NormalizeURL(row.URL)},
		},
	}, nil
}

// Validate reports the errors Build would return, without building.
func Validate(row feed.Row) error {
	_, _, err := size(row)
	return err
}

func size(row feed.Row) (width, height int, err error) {
	if strings.TrimSpace(row.URL) == "" {
		return 0, 0, fmt.Errorf("creative %q has no url", row.Name)
	}
	if width, err = dimension(row.Width); err != nil {
		return 0, 0, fmt.Errorf("creative %q width: %w", row.Name, err)
	}
	if height, err = dimension(row.Height); err != nil {
		return 0, 0, fmt.Errorf("creative %q height: %w", row.Name, err)
	}
	return width, height, nil
}

// Revise applies the row's editable text to a copy of the live creative and
// returns it with the update mask covering what actually changed.
// It fails when the live creative lacks one of the text roles the row fills.
func Revise(live *dv360.Creative, row feed.Row) (*dv360.Creative, []string, error) {
	next := live.Clone()

	if row.Name != "" && row.Name != live.DisplayName {
		next.DisplayName = row.Name
	}
	for _, text := range []struct {
		role  dv360.AssetRole
		value string
		max   int
	}{
		{dv360.RoleHeadline, row.Headline, HeadlineMaxLength},
		{dv360.RoleBody, row.Body, BodyMaxLength},
		{dv360.RoleCallToAction, row.CallToAction, CallToActionMaxLength},
	} {
		if text.value == "" {
			continue
		}
		if err := next.SetContent(text.role, Truncate(text.value, text.max)); err != nil {
			return nil, nil, err
		}
	}

	return next, Mask(live, next), nil
}

// Filename returns the upload name for the row.
func Filename(row feed.Row) string {
	if f := strings.TrimSpace(row.Filename); f != "" {
		return f
	}
	return DefaultFilename
}

// NormalizeURL prefixes https:// when the url carries no http(s) scheme.
func NormalizeURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" || strings.HasPrefix(strings.ToLower(u), "http") {
		return u
	}
	return "https://" + strings.TrimPrefix(u, "//")
}

// dimension parses a pixel size. Absent or non-numeric values default to 1.
func dimension(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 1, nil
		}
		v = int(f)
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", v)
	}
	return v, nil
}
