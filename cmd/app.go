package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"creative-sync/core/audit"
	"creative-sync/core/config"
	"creative-sync/core/drive"
	"creative-sync/core/dv360"
	"creative-sync/core/feed"
	"creative-sync/core/gcs"
	"creative-sync/core/google"
	"creative-sync/core/lock"
	"creative-sync/core/logger"
	"creative-sync/core/metrics"
	"creative-sync/core/reconcile"
	"creative-sync/core/sheets"
	"creative-sync/core/storage"
	"creative-sync/feature/assets"
	"creative-sync/feature/logo"
	"creative-sync/feature/processing"

	"go.uber.org/zap"
)

// app holds the services every command needs, built once from configuration.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics metrics.Registry

	feed *processing.Service
	logo *logo.Service

	closers []io.Closer
}

// newApp loads configuration and wires the services. m may be nil.
func newApp(ctx context.Context, m metrics.Registry) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if m == nil {
		m = metrics.NewNoOp()
	}
	a := &app{cfg: cfg, logger: l, metrics: m}

	spreadsheetID, err := google.SpreadsheetID(cfg.Google.SpreadsheetID)
	if err != nil {
		return nil, err
	}

	httpClient, err := google.HTTPClient(ctx, cfg.Google)
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	store, err := sheets.New(ctx, httpClient, spreadsheetID)
	if err != nil {
		return nil, err
	}

	dv, err := dv360.NewClient(ctx, httpClient, cfg.DV360, l, m)
	if err != nil {
		return nil, err
	}

	resolver, err := a.resolver(ctx, httpClient, dv)
	if err != nil {
		a.Close()
		return nil, err
	}

	sheet := feed.NewSheet(store, cfg.Google.FeedSheet)
	auditLog := audit.New(l, store, cfg.Google.LogSheet)
	engine := reconcile.NewEngine(dv, resolver, sheet, auditLog, l, m)

	locker := lock.New(cfg.Lock)
	if c, ok := locker.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}

	a.feed = processing.NewService(store, sheet, engine, auditLog, locker, processing.Settings{
		ConfigSheet: cfg.Google.ConfigSheet,
		LockKey:     spreadsheetID,
	}, l)
	a.logo = logo.NewService(store, cfg.Google.ConfigSheet, dv, resolver, l)

	return a, nil
}

// resolver enables every asset source that is configured.
func (a *app) resolver(ctx context.Context, httpClient *http.Client, dv *dv360.Client) (*assets.Resolver, error) {
	driveStore, err := drive.New(ctx, httpClient)
	if err != nil {
		return nil, err
	}
	opts := []assets.Option{assets.WithDrive(driveStore)}

	if a.cfg.Storage.Enabled {
		s3, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		opts = append(opts, assets.WithS3(assets.S3Reader{Client: s3}))
	}

	if a.cfg.GCS.Enabled {
		gc, err := gcs.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, gc)
		opts = append(opts, assets.WithGCS(gc))
	}

	// public asset URLs are fetched without Google credentials
	fetch := &http.Client{Timeout: time.Duration(a.cfg.DV360.TimeoutSeconds) * time.Second}
	return assets.NewResolver(dv, fetch, a.logger, opts...), nil
}

// Close releases clients and flushes the logger.
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("Failed to close client", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
