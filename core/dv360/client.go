package dv360

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"creative-sync/core/metrics"

	"go.uber.org/zap"
	displayvideo "google.golang.org/api/displayvideo/v3"
	"google.golang.org/api/option"
)

// Client calls Display & Video 360 through the generated displayvideo/v3 service.
// The HTTP client is expected to attach the bearer token itself (see oauth2.NewClient).
type Client struct {
	svc     *displayvideo.Service
	timeout time.Duration
	logger  *zap.Logger
	metrics metrics.Registry
}

// NewClient creates a new DV360 client. Extra options (for example
// option.WithEndpoint in tests) are appended after the configured ones.
func NewClient(ctx context.Context, httpClient *http.Client, cfg Config, logger *zap.Logger, m metrics.Registry, opts ...option.ClientOption) (*Client, error) {
	if m == nil {
		m = metrics.NewNoOp()
	}

	wrapped := *httpClient
	wrapped.Transport = &embeddedErrorTransport{base: httpClient.Transport}

	base := []option.ClientOption{option.WithHTTPClient(&wrapped)}
	if cfg.Endpoint != "" {
		base = append(base, option.WithEndpoint(cfg.Endpoint))
	}
	svc, err := displayvideo.NewService(ctx, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create displayvideo service: %w", err)
	}

	return &Client{
		svc:     svc,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		logger:  logger,
		metrics: m,
	}, nil
}

// GetCreative fetches a single creative.
func (c *Client) GetCreative(ctx context.Context, advertiserID, creativeID string) (*Creative, error) {
	adv, cid, err := creativeKey(advertiserID, creativeID)
	if err != nil {
		return nil, err
	}

	var out *displayvideo.Creative
	err = c.do(ctx, "get_creative", func(ctx context.Context) (err error) {
		out, err = c.svc.Advertisers.Creatives.Get(adv, cid).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	return fromAPICreative(out), nil
}

// ListNativeCreatives returns every native creative of the advertiser, following pagination.
func (c *Client) ListNativeCreatives(ctx context.Context, advertiserID string) ([]Creative, error) {
	adv, err := parseID("advertiser", advertiserID)
	if err != nil {
		return nil, err
	}

	var all []Creative
	err = c.do(ctx, "list_creatives", func(ctx context.Context) error {
		call := c.svc.Advertisers.Creatives.List(adv).Filter("creativeType=" + CreativeTypeNative)
		return call.Pages(ctx, func(page *displayvideo.ListCreativesResponse) error {
			for _, cr := range page.Creatives {
				all = append(all, *fromAPICreative(cr))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// CreateCreative creates a creative under the advertiser and returns the stored resource.
func (c *Client) CreateCreative(ctx context.Context, advertiserID string, creative *Creative) (*Creative, error) {
	adv, err := parseID("advertiser", advertiserID)
	if err != nil {
		return nil, err
	}
	payload, err := toAPICreative(creative)
	if err != nil {
		return nil, err
	}

	var out *displayvideo.Creative
	err = c.do(ctx, "create_creative", func(ctx context.Context) (err error) {
		out, err = c.svc.Advertisers.Creatives.Create(adv, payload).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	if out.CreativeId == 0 {
		return nil, &UpstreamError{Op: "create_creative", Status: http.StatusOK, Message: "response carries no creativeId"}
	}
	return fromAPICreative(out), nil
}

// UpdateCreative patches the fields named in mask. Asset content holding a
// server-generated /simgad reference is dropped from the outgoing payload.
func (c *Client) UpdateCreative(ctx context.Context, creative *Creative, mask []string) (*Creative, error) {
	if len(mask) == 0 {
		return nil, fmt.Errorf("update creative %s: empty update mask", creative.CreativeID)
	}
	adv, cid, err := creativeKey(creative.AdvertiserID, creative.CreativeID)
	if err != nil {
		return nil, err
	}
	payload, err := toAPICreative(creative)
	if err != nil {
		return nil, err
	}
	for _, a := range payload.Assets {
		if a.Asset != nil && strings.HasPrefix(a.Asset.Content, simgadPrefix) {
			a.Asset.Content = ""
		}
	}

	var out *displayvideo.Creative
	err = c.do(ctx, "update_creative", func(ctx context.Context) (err error) {
		out, err = c.svc.Advertisers.Creatives.Patch(adv, cid, payload).
			UpdateMask(strings.Join(mask, ",")).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	return fromAPICreative(out), nil
}

// PauseCreative moves the creative to ENTITY_STATUS_PAUSED.
func (c *Client) PauseCreative(ctx context.Context, advertiserID, creativeID string) error {
	return c.setStatus(ctx, "pause_creative", advertiserID, creativeID, StatusPaused)
}

// ArchiveCreative moves the creative to ENTITY_STATUS_ARCHIVED, which deletion requires.
func (c *Client) ArchiveCreative(ctx context.Context, advertiserID, creativeID string) error {
	return c.setStatus(ctx, "archive_creative", advertiserID, creativeID, StatusArchived)
}

func (c *Client) setStatus(ctx context.Context, op, advertiserID, creativeID string, status EntityStatus) error {
	adv, cid, err := creativeKey(advertiserID, creativeID)
	if err != nil {
		return err
	}
	payload := &displayvideo.Creative{EntityStatus: string(status)}
	return c.do(ctx, op, func(ctx context.Context) error {
		_, err := c.svc.Advertisers.Creatives.Patch(adv, cid, payload).
			UpdateMask(FieldEntityStatus).
			Context(ctx).
			Do()
		return err
	})
}

// DeleteCreative permanently deletes an archived creative.
func (c *Client) DeleteCreative(ctx context.Context, advertiserID, creativeID string) error {
	adv, cid, err := creativeKey(advertiserID, creativeID)
	if err != nil {
		return err
	}
	return c.do(ctx, "delete_creative", func(ctx context.Context) error {
		_, err := c.svc.Advertisers.Creatives.Delete(adv, cid).Context(ctx).Do()
		return err
	})
}

// GetLineItem fetches a single line item.
func (c *Client) GetLineItem(ctx context.Context, advertiserID, lineItemID string) (*LineItem, error) {
	adv, lid, err := lineItemKey(advertiserID, lineItemID)
	if err != nil {
		return nil, err
	}

	var out *displayvideo.LineItem
	err = c.do(ctx, "get_line_item", func(ctx context.Context) (err error) {
		out, err = c.svc.Advertisers.LineItems.Get(adv, lid).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	return fromAPILineItem(out), nil
}

// UpdateLineItem replaces the creative id list of the line item. An empty
// list is sent as [] so the line item ends up with no creatives.
// A 200 response carrying an error object is reported as an UpstreamError.
func (c *Client) UpdateLineItem(ctx context.Context, lineItem *LineItem) (*LineItem, error) {
	adv, lid, err := lineItemKey(lineItem.AdvertiserID, lineItem.LineItemID)
	if err != nil {
		return nil, err
	}
	ids, err := parseIDs("creative", lineItem.CreativeIDs)
	if err != nil {
		return nil, err
	}
	payload := &displayvideo.LineItem{
		CreativeIds:     ids,
		ForceSendFields: []string{"CreativeIds"},
	}

	var out *displayvideo.LineItem
	err = c.do(ctx, "update_line_item", func(ctx context.Context) (err error) {
		out, err = c.svc.Advertisers.LineItems.Patch(adv, lid, payload).
			UpdateMask(FieldCreativeIDs).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	return fromAPILineItem(out), nil
}

// UploadAsset uploads media bytes and returns the media id.
func (c *Client) UploadAsset(ctx context.Context, advertiserID, filename string, data []byte) (string, error) {
	adv, err := parseID("advertiser", advertiserID)
	if err != nil {
		return "", err
	}

	var out *displayvideo.CreateAssetResponse
	err = c.do(ctx, "upload_asset", func(ctx context.Context) (err error) {
		out, err = c.svc.Advertisers.Assets.
			Upload(adv, &displayvideo.CreateAssetRequest{Filename: filename}).
			Media(bytes.NewReader(data)).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return "", err
	}
	if out.Asset == nil || out.Asset.MediaId == 0 {
		return "", &UpstreamError{Op: "upload_asset", Status: http.StatusOK, Message: "response carries no mediaId"}
	}
	return formatID(out.Asset.MediaId), nil
}

// do runs one API call under the configured timeout and records its outcome.
func (c *Client) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)

	status := "ok"
	if err != nil {
		status = "error"
		err = upstreamError(op, err)
	}
	c.metrics.IncrementRemoteCalls(op, status)
	c.logger.Debug("dv360 call",
		zap.String("op", op),
		zap.String("status", status),
		zap.Duration("took", time.Since(start)),
	)
	return err
}
