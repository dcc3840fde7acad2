package dv360

import "fmt"

// EntityStatus is the lifecycle state of a creative or line item.
type EntityStatus string

const (
	StatusActive   EntityStatus = "ENTITY_STATUS_ACTIVE"
	StatusPaused   EntityStatus = "ENTITY_STATUS_PAUSED"
	StatusArchived EntityStatus = "ENTITY_STATUS_ARCHIVED"
)

// AssetRole tags an asset inside a native creative.
type AssetRole string

const (
	RoleMain         AssetRole = "ASSET_ROLE_MAIN"
	RoleHeadline     AssetRole = "ASSET_ROLE_HEADLINE"
	RoleBody         AssetRole = "ASSET_ROLE_BODY"
	RoleIcon         AssetRole = "ASSET_ROLE_ICON"
	RoleCaptionURL   AssetRole = "ASSET_ROLE_CAPTION_URL"
	RoleCallToAction AssetRole = "ASSET_ROLE_CALL_TO_ACTION"
)

const (
	CreativeTypeNative   = "CREATIVE_TYPE_NATIVE"
	HostingSourceHosted  = "HOSTING_SOURCE_HOSTED"
	ExitEventTypeDefault = "EXIT_EVENT_TYPE_DEFAULT"
)

// Mutable top-level creative and line item fields accepted in an update mask.
const (
	FieldDisplayName  = "displayName"
	FieldAssets       = "assets"
	FieldEntityStatus = "entityStatus"
	FieldCreativeIDs  = "creativeIds"
)

// simgadPrefix marks server-generated image references that must not be sent back.
const simgadPrefix = "/simgad"

// Creative is the subset of the DV360 creative resource this service manages.
type Creative struct {
	Name          string             `json:"name,omitempty"`
	AdvertiserID  string             `json:"advertiserId,omitempty"`
	CreativeID    string             `json:"creativeId,omitempty"`
	DisplayName   string             `json:"displayName,omitempty"`
	EntityStatus  EntityStatus       `json:"entityStatus,omitempty"`
	CreativeType  string             `json:"creativeType,omitempty"`
	HostingSource string             `json:"hostingSource,omitempty"`
	Dimensions    *Dimensions        `json:"dimensions,omitempty"`
	Assets        []AssetAssociation `json:"assets,omitempty"`
	ExitEvents    []ExitEvent        `json:"exitEvents,omitempty"`
}

// Dimensions are the creative size in pixels.
type Dimensions struct {
	WidthPixels  int `json:"widthPixels"`
	HeightPixels int `json:"heightPixels"`
}

// AssetAssociation binds an asset to its role in the creative.
type AssetAssociation struct {
	Asset Asset     `json:"asset"`
	Role  AssetRole `json:"role"`
}

// Asset is either a media reference or inline text content.
type Asset struct {
	MediaID string `json:"mediaId,omitempty"`
	Content string `json:"content,omitempty"`
}

// ExitEvent is a click-through destination.
type ExitEvent struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// AssetByRole returns the index of the first asset with the role, or -1.
func (c *Creative) AssetByRole(role AssetRole) int {
	for i, a := range c.Assets {
		if a.Role == role {
			return i
		}
	}
	return -1
}

// SetContent replaces the inline content of the asset with the role.
// The creative is left untouched when it carries no asset with that role.
func (c *Creative) SetContent(role AssetRole, content string) error {
	i := c.AssetByRole(role)
	if i < 0 {
		return fmt.Errorf("creative %s has no %s asset", c.CreativeID, role)
	}
	c.Assets[i].Asset.Content = content
	return nil
}

// Clone returns a deep copy of the creative.
func (c *Creative) Clone() *Creative {
	out := *c
	if c.Dimensions != nil {
		d := *c.Dimensions
		out.Dimensions = &d
	}
	out.Assets = append([]AssetAssociation(nil), c.Assets...)
	out.ExitEvents = append([]ExitEvent(nil), c.ExitEvents...)
	return &out
}

// LineItem is the subset of the DV360 line item resource this service manages.
type LineItem struct {
	Name         string   `json:"name,omitempty"`
	AdvertiserID string   `json:"advertiserId,omitempty"`
	LineItemID   string   `json:"lineItemId,omitempty"`
	DisplayName  string   `json:"displayName,omitempty"`
	CreativeIDs  []string `json:"creativeIds"`
}

// APIError is the error object DV360 returns, sometimes inside a 200 response.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
