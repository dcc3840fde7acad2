package dv360

import (
	"fmt"
	"strconv"
	"strings"

	displayvideo "google.golang.org/api/displayvideo/v3"
	"google.golang.org/api/googleapi"
)

// parseID converts a decimal resource id. Empty ids are rejected.
func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	return id, nil
}

// optionalID is parseID that maps an empty id to zero, which the API omits.
func optionalID(kind, s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return parseID(kind, s)
}

func parseIDs(kind string, ss []string) (googleapi.Int64s, error) {
	ids := make(googleapi.Int64s, 0, len(ss))
	for _, s := range ss {
		id, err := parseID(kind, s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func creativeKey(advertiserID, creativeID string) (int64, int64, error) {
	adv, err := parseID("advertiser", advertiserID)
	if err != nil {
		return 0, 0, err
	}
	cid, err := parseID("creative", creativeID)
	if err != nil {
		return 0, 0, err
	}
	return adv, cid, nil
}

func lineItemKey(advertiserID, lineItemID string) (int64, int64, error) {
	adv, err := parseID("advertiser", advertiserID)
	if err != nil {
		return 0, 0, err
	}
	lid, err := parseID("line item", lineItemID)
	if err != nil {
		return 0, 0, err
	}
	return adv, lid, nil
}

func toAPICreative(c *Creative) (*displayvideo.Creative, error) {
	adv, err := optionalID("advertiser", c.AdvertiserID)
	if err != nil {
		return nil, err
	}
	cid, err := optionalID("creative", c.CreativeID)
	if err != nil {
		return nil, err
	}

	out := &displayvideo.Creative{
		Name:          c.Name,
		AdvertiserId:  adv,
		CreativeId:    cid,
		DisplayName:   c.DisplayName,
		EntityStatus:  string(c.EntityStatus),
		CreativeType:  c.CreativeType,
		HostingSource: c.HostingSource,
	}
	if c.Dimensions != nil {
		out.Dimensions = &displayvideo.Dimensions{
			WidthPixels:  int64(c.Dimensions.WidthPixels),
			HeightPixels: int64(c.Dimensions.HeightPixels),
		}
	}
	for _, a := range c.Assets {
		media, err := optionalID("media", a.Asset.MediaID)
		if err != nil {
			return nil, err
		}
		out.Assets = append(out.Assets, &displayvideo.AssetAssociation{
			Asset: &displayvideo.Asset{MediaId: media, Content: a.Asset.Content},
			Role:  string(a.Role),
		})
	}
	for _, e := range c.ExitEvents {
		out.ExitEvents = append(out.ExitEvents, &displayvideo.ExitEvent{Type: e.Type, Url: e.URL})
	}
	return out, nil
}

func fromAPICreative(c *displayvideo.Creative) *Creative {
	out := &Creative{
		Name:          c.Name,
		AdvertiserID:  formatID(c.AdvertiserId),
		CreativeID:    formatID(c.CreativeId),
		DisplayName:   c.DisplayName,
		EntityStatus:  EntityStatus(c.EntityStatus),
		CreativeType:  c.CreativeType,
		HostingSource: c.HostingSource,
	}
	if c.Dimensions != nil {
		out.Dimensions = &Dimensions{
			WidthPixels:  int(c.Dimensions.WidthPixels),
			HeightPixels: int(c.Dimensions.HeightPixels),
		}
	}
	for _, a := range c.Assets {
		if a == nil {
			continue
		}
		assoc := AssetAssociation{Role: AssetRole(a.Role)}
		if a.Asset != nil {
			assoc.Asset = Asset{MediaID: formatID(a.Asset.MediaId), Content: a.Asset.Content}
		}
		out.Assets = append(out.Assets, assoc)
	}
	for _, e := range c.ExitEvents {
		if e != nil {
			out.ExitEvents = append(out.ExitEvents, ExitEvent{Type: e.Type, URL: e.Url})
		}
	}
	return out
}

func fromAPILineItem(li *displayvideo.LineItem) *LineItem {
	out := &LineItem{
		Name:         li.Name,
		AdvertiserID: formatID(li.AdvertiserId),
		LineItemID:   formatID(li.LineItemId),
		DisplayName:  li.DisplayName,
		CreativeIDs:  make([]string, 0, len(li.CreativeIds)),
	}
	for _, id := range li.CreativeIds {
		out.CreativeIDs = append(out.CreativeIDs, strconv.FormatInt(id, 10))
	}
	return out
}
