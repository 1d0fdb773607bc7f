package precache

import (
	"errors"

	"precache-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the precache feature.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the precache routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/precache")
	group.Get("/", h.HandleLast)
	group.Post("/activate", h.HandleActivate)
	group.Get("/check", h.HandleCheck)
	group.Get("/history", h.HandleHistoryList)
	group.Get("/history/:id", h.HandleHistoryGet)
}

// HandleLast returns the most recent activation report.
// @Summary Last Activation
// @Description Returns the report of the most recent activation handled by this process.
// @Tags precache
// @Produce json
// @Success 200 {object} Report
// @Failure 404 {object} map[string]string "No activation yet"
// @Router /precache [get]
func (h *Handler) HandleLast(c *fiber.Ctx) error {
	report := h.service.Last()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no activation yet"})
	}
	return c.JSON(report)
}

// HandleActivate re-reads the manifest and precaches every entry.
// @Summary Trigger Activation
// @Description Runs a full activation against the recording engine. Concurrent requests share one run.
// @Tags precache
// @Produce json
// @Success 200 {object} Report
// @Router /precache/activate [post]
func (h *Handler) HandleActivate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Info("Activation requested")

	report := h.service.ActivateShared(c.UserContext())
	return c.JSON(report)
}

// HandleCheck parses the manifest without precaching.
// @Summary Check Manifest
// @Description Parses the manifest and reports accepted, skipped and rejected entries.
// @Tags precache
// @Produce json
// @Success 200 {object} Report
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /precache/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	report, err := h.service.Check(c.UserContext())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Manifest check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleHistoryList lists recorded activations.
// @Summary Activation History
// @Description Lists the most recent recorded activations.
// @Tags precache
// @Produce json
// @Param limit query int false "Maximum number of activations" default(20)
// @Success 200 {array} models.Activation
// @Failure 503 {object} map[string]string "History disabled"
// @Router /precache/history [get]
func (h *Handler) HandleHistoryList(c *fiber.Ctx) error {
	history := h.service.History()
	if history == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "history disabled"})
	}

	activations, err := history.List(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("History list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(activations)
}

// HandleHistoryGet returns one recorded activation with its entries.
// @Summary Activation Detail
// @Description Returns a recorded activation and the entries it precached.
// @Tags precache
// @Produce json
// @Param id path string true "Activation ID"
// @Success 200 {object} models.Activation
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "History disabled"
// @Router /precache/history/{id} [get]
func (h *Handler) HandleHistoryGet(c *fiber.Ctx) error {
	history := h.service.History()
	if history == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "history disabled"})
	}

	activation, err := history.Get(c.UserContext(), c.Params("id"))
	if errors.Is(err, ErrActivationNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("History lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(activation)
}
