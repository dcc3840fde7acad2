package processing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"creative-sync/core/feed"
	"creative-sync/core/lock"
	"creative-sync/core/reconcile"

	"go.uber.org/zap"
)

// ErrInvalidConfig is returned when the Config sheet lacks a required setting.
var ErrInvalidConfig = errors.New("invalid run configuration")

// Runner executes the two passes (see reconcile.Engine).
type Runner interface {
	Cleanup(ctx context.Context, cfg feed.RunConfig, entries []feed.Entry) *reconcile.Report
	Reconcile(ctx context.Context, cfg feed.RunConfig, entries []feed.Entry) *reconcile.Report
}

// Auditor is the run log (see audit.Log).
type Auditor interface {
	Log(ctx context.Context, msg string, fields ...zap.Field)
	Clear(ctx context.Context)
}

// Settings names the sheets a run touches and the lock it holds.
type Settings struct {
	ConfigSheet string
	LockKey     string
}

// Result is the outcome of a full processing run.
type Result struct {
	Config    feed.RunConfig    `json:"config"`
	Cleanup   *reconcile.Report `json:"cleanup"`
	Reconcile *reconcile.Report `json:"reconcile"`
}

// Service runs the feed passes against one spreadsheet.
type Service struct {
	table    feed.Table
	sheet    *feed.Sheet
	runner   Runner
	audit    Auditor
	locker   lock.Locker
	settings Settings
	logger   *zap.Logger
}

// NewService creates a feed Service.
func NewService(table feed.Table, sheet *feed.Sheet, runner Runner, audit Auditor, locker lock.Locker, settings Settings, logger *zap.Logger) *Service {
	return &Service{
		table:    table,
		sheet:    sheet,
		runner:   runner,
		audit:    audit,
		locker:   locker,
		settings: settings,
		logger:   logger,
	}
}

// ProcessFeed clears the run log, retires removed rows, then reconciles a
// fresh snapshot of what is left.
func (s *Service) ProcessFeed(ctx context.Context) (*Result, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release(release)

	s.audit.Clear(ctx)

	cfg, err := s.runConfig(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{Config: cfg}
	if res.Cleanup, err = s.cleanup(ctx, cfg); err != nil {
		return nil, err
	}

	entries, err := s.sheet.Snapshot(ctx)
	if err != nil {
		return res, err
	}
	res.Reconcile = s.runner.Reconcile(ctx, cfg, entries)

	s.audit.Log(ctx, fmt.Sprintf("Done: %d created, %d updated, %d unchanged, %d failed",
		res.Reconcile.Summary.Created,
		res.Reconcile.Summary.Updated,
		res.Reconcile.Summary.Unchanged,
		res.Reconcile.Summary.Failed,
	))
	return res, nil
}

// CleanupFeed runs the removal pass alone.
func (s *Service) CleanupFeed(ctx context.Context) (*reconcile.Report, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release(release)

	cfg, err := s.runConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s.cleanup(ctx, cfg)
}

// PlanFeed reports what ProcessFeed would do without touching anything.
func (s *Service) PlanFeed(ctx context.Context) (*reconcile.Report, error) {
	cfg, err := s.runConfig(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.sheet.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reconcile.Plan(cfg, entries), nil
}

func (s *Service) cleanup(ctx context.Context, cfg feed.RunConfig) (*reconcile.Report, error) {
	entries, err := s.sheet.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.runner.Cleanup(ctx, cfg, entries), nil
}

func (s *Service) runConfig(ctx context.Context) (feed.RunConfig, error) {
	cfg, err := feed.LoadRunConfig(ctx, s.table, s.settings.ConfigSheet)
	if err != nil {
		return feed.RunConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return feed.RunConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func (s *Service) acquire(ctx context.Context) (lock.Release, error) {
	release, err := s.locker.Acquire(ctx, s.settings.LockKey)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", s.settings.LockKey, err)
	}
	return release, nil
}

func (s *Service) release(release lock.Release) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := release(ctx); err != nil {
		s.logger.Warn("Failed to release feed lock", zap.String("key", s.settings.LockKey), zap.Error(err))
	}
}
