package logo

import (
	"context"
	"errors"
	"fmt"

	"creative-sync/core/creative"
	"creative-sync/core/dv360"
	"creative-sync/core/feed"

	"go.uber.org/zap"
)

// ErrNoIcon is returned when the source creative has no icon media.
var ErrNoIcon = errors.New("creative has no icon asset")

// CreativeGetter reads a live creative (see dv360.Client).
type CreativeGetter interface {
	GetCreative(ctx context.Context, advertiserID, creativeID string) (*dv360.Creative, error)
}

// Resolver uploads logo bytes (see assets.Resolver).
type Resolver interface {
	Resolve(ctx context.Context, advertiserID, ref, filename string) (string, error)
	ResolveDriveFile(ctx context.Context, advertiserID, fileIdentifier, filename string) (string, error)
}

// Service sets the logo media id every new creative uses as its icon.
type Service struct {
	table       feed.Table
	configSheet string
	creatives   CreativeGetter
	resolver    Resolver
	logger      *zap.Logger
}

// NewService creates a new logo service.
func NewService(table feed.Table, configSheet string, creatives CreativeGetter, resolver Resolver, logger *zap.Logger) *Service {
	return &Service{
		table:       table,
		configSheet: configSheet,
		creatives:   creatives,
		resolver:    resolver,
		logger:      logger,
	}
}

// FromCreative copies the icon media id of an existing creative.
func (s *Service) FromCreative(ctx context.Context, creativeID string) (string, error) {
	cfg, err := s.runConfig(ctx)
	if err != nil {
		return "", err
	}

	c, err := s.creatives.GetCreative(ctx, cfg.AdvertiserID, creativeID)
	if err != nil {
		return "", fmt.Errorf("get creative %s: %w", creativeID, err)
	}
	i := c.AssetByRole(dv360.RoleIcon)
	if i < 0 || c.Assets[i].Asset.MediaID == "" {
		return "", fmt.Errorf("creative %s: %w", creativeID, ErrNoIcon)
	}
	return s.save(ctx, c.Assets[i].Asset.MediaID)
}

// FromURL uploads the image at a public URL.
func (s *Service) FromURL(ctx context.Context, rawURL string) (string, error) {
	cfg, err := s.runConfig(ctx)
	if err != nil {
		return "", err
	}
	mediaID, err := s.resolver.Resolve(ctx, cfg.AdvertiserID, rawURL, creative.DefaultFilename)
	if err != nil {
		return "", err
	}
	return s.save(ctx, mediaID)
}

// FromDrive uploads a Drive file given by id or file URL.
func (s *Service) FromDrive(ctx context.Context, fileIdentifier string) (string, error) {
	cfg, err := s.runConfig(ctx)
	if err != nil {
		return "", err
	}
	mediaID, err := s.resolver.ResolveDriveFile(ctx, cfg.AdvertiserID, fileIdentifier, creative.DefaultFilename)
	if err != nil {
		return "", err
	}
	return s.save(ctx, mediaID)
}

func (s *Service) runConfig(ctx context.Context) (feed.RunConfig, error) {
	cfg, err := feed.LoadRunConfig(ctx, s.table, s.configSheet)
	if err != nil {
		return feed.RunConfig{}, err
	}
	return cfg, cfg.Validate()
}

func (s *Service) save(ctx context.Context, mediaID string) (string, error) {
	if err := feed.SaveLogoAssetID(ctx, s.table, s.configSheet, mediaID); err != nil {
		return "", err
	}
	s.logger.Info("Logo asset updated", zap.String("media_id", mediaID))
	return mediaID, nil
}
