package fastdl

import (
	"precache-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the FastDL publisher.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the FastDL routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/fastdl")
	group.Get("/plan", h.HandlePlan)
	group.Post("/sync", h.HandleSync)
}

// HandlePlan compares the manifest with the bucket.
// @Summary FastDL Plan
// @Description Lists the uploads needed to bring the FastDL bucket in line with the manifest.
// @Tags fastdl
// @Produce json
// @Success 200 {object} Plan
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /fastdl/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	plan, err := h.service.PlanCurrent(c.UserContext())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("FastDL plan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

// HandleSync uploads missing and stale entries.
// @Summary FastDL Sync
// @Description Uploads missing and stale manifest entries to the FastDL bucket.
// @Tags fastdl
// @Produce json
// @Param dry_run query bool false "Plan only, do not upload" default(false)
// @Success 200 {object} SyncResult
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /fastdl/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	dryRun := c.QueryBool("dry_run", false)
	l.Info("FastDL sync requested", zap.Bool("dry_run", dryRun))

	result, err := h.service.Sync(c.UserContext(), dryRun)
	if err != nil {
		l.Error("FastDL sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}
