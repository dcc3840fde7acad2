package processing

import (
	"errors"

	"creative-sync/core/lock"
	"creative-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the feed passes over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the feed routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/feed")
	group.Post("/process", h.HandleProcess)
	group.Post("/cleanup", h.HandleCleanup)
	group.Get("/plan", h.HandlePlan)
}

// HandleProcess runs cleanup and reconcile. With ?dry_run=true it only plans.
// @Summary Process Feed
// @Description Run the removal pass then reconcile every named row against DV360. With dry_run the rows are only classified.
// @Tags feed
// @Produce json
// @Security ApiKeyAuth
// @Param dry_run query bool false "Plan only, without side effects"
// @Success 200 {object} processing.Result "Cleanup and reconcile reports (a reconcile.Report when dry_run is set)"
// @Failure 409 {object} map[string]string "Another run holds the lock"
// @Failure 422 {object} map[string]string "Config sheet is incomplete"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feed/process [post]
func (h *Handler) HandleProcess(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if c.QueryBool("dry_run") {
		return h.HandlePlan(c)
	}

	l.Info("Processing feed")
	res, err := h.service.ProcessFeed(c.UserContext())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(res)
}

// HandleCleanup runs the removal pass alone.
// @Summary Cleanup Feed
// @Description Pause, archive or delete the creatives of rows flagged Remove and clear those rows.
// @Tags feed
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} reconcile.Report "Removal report"
// @Failure 409 {object} map[string]string "Another run holds the lock"
// @Failure 422 {object} map[string]string "Config sheet is incomplete"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feed/cleanup [post]
func (h *Handler) HandleCleanup(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Cleaning up feed")

	report, err := h.service.CleanupFeed(c.UserContext())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(report)
}

// HandlePlan classifies every row without side effects.
// @Summary Plan Feed
// @Description Report the action each row would take on the next run.
// @Tags feed
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} reconcile.Report "Dry run report"
// @Failure 422 {object} map[string]string "Config sheet is incomplete"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feed/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.PlanFeed(c.UserContext())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, lock.ErrLocked):
		status = fiber.StatusConflict
	case errors.Is(err, ErrInvalidConfig):
		status = fiber.StatusUnprocessableEntity
	}
	l.Error("Feed request failed", zap.Int("status", status), zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
