package logo

import (
	"errors"

	"creative-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the logo flows.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the logo routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/logo")
	group.Post("/creative/:id", h.HandleFromCreative)
	group.Post("/url", h.HandleFromURL)
	group.Post("/drive/:id", h.HandleFromDrive)
}

type urlRequest struct {
	URL string `json:"url" example:"https://cdn.example.com/brand/logo.png"`
}

// HandleFromCreative copies the icon of an existing creative.
// @Summary Logo From Creative
// @Description Store the icon media id of an existing creative as the logo for new creatives.
// @Tags logo
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Creative ID"
// @Success 200 {object} map[string]string "logo_asset_id"
// @Failure 404 {object} map[string]string "Creative has no icon asset"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /logo/creative/{id} [post]
func (h *Handler) HandleFromCreative(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id, err := h.service.FromCreative(c.UserContext(), c.Params("id"))
	return h.respond(c, l, id, err)
}

// HandleFromURL uploads the image at the posted URL.
// @Summary Logo From URL
// @Description Upload the image at a public URL and store its media id as the logo.
// @Tags logo
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body urlRequest true "Image URL"
// @Success 200 {object} map[string]string "logo_asset_id"
// @Failure 400 {object} map[string]string "url is required"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /logo/url [post]
func (h *Handler) HandleFromURL(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req urlRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}
	id, err := h.service.FromURL(c.UserContext(), req.URL)
	return h.respond(c, l, id, err)
}

// HandleFromDrive uploads a Drive file.
// @Summary Logo From Drive
// @Description Upload a Google Drive file and store its media id as the logo.
// @Tags logo
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Drive file ID"
// @Success 200 {object} map[string]string "logo_asset_id"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /logo/drive/{id} [post]
func (h *Handler) HandleFromDrive(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id, err := h.service.FromDrive(c.UserContext(), c.Params("id"))
	return h.respond(c, l, id, err)
}

func (h *Handler) respond(c *fiber.Ctx, l *zap.Logger, mediaID string, err error) error {
	if err != nil {
		status := fiber.StatusBadGateway
		if errors.Is(err, ErrNoIcon) {
			status = fiber.StatusNotFound
		}
		l.Error("Logo update failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"logo_asset_id": mediaID})
}
