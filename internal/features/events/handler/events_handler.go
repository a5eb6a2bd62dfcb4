package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shipment-market/internal/core/identity"
	eventservice "shipment-market/internal/features/events/service"
	marketdomain "shipment-market/internal/features/marketplace/domain"

	"github.com/gofiber/fiber/v2"
)

// EventsHandler handles HTTP requests for the audit event log.
type EventsHandler struct {
	audit *eventservice.AuditService
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(audit *eventservice.AuditService) *EventsHandler {
	return &EventsHandler{
		audit: audit,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// PurgeResponse acknowledges a completed purge.
type PurgeResponse struct {
	Status string `json:"status"`
}

// ListEvents godoc
// @Summary List retained audit events
// @Description Returns every retained event with sequence greater than since, ascending. Omit since for all.
// @Tags events
// @Produce json
// @Param since query int false "Sequence watermark"
// @Success 200 {array} domain.RecordedEvent
// @Failure 400 {object} ErrorResponse
// @Router /events [get]
func (h *EventsHandler) ListEvents(c *fiber.Ctx) error {
	var since uint64
	if raw := c.Query("since"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "since must be a non-negative integer",
				RayID:   rayID(c),
			})
		}
		since = parsed
	}

	return c.JSON(h.audit.Events(since))
}

// PurgeOldEvents godoc
// @Summary Drop audit events older than the retention window (admin only)
// @Tags events
// @Produce json
// @Success 200 {object} PurgeResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/purge [post]
func (h *EventsHandler) PurgeOldEvents(c *fiber.Ctx) error {
	if err := h.audit.PurgeOld(identity.FromCtx(c)); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, marketdomain.ErrUnauthorized) {
			status = http.StatusUnauthorized
		}

		return c.Status(status).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.JSON(PurgeResponse{Status: "ok"})
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
