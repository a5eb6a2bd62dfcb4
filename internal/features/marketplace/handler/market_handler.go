package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shipment-market/internal/core/identity"
	"shipment-market/internal/core/logger"
	"shipment-market/internal/features/marketplace/domain"
	"shipment-market/internal/features/marketplace/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MarketHandler handles HTTP requests for marketplace operations.
type MarketHandler struct {
	service *service.MarketService
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(s *service.MarketService) *MarketHandler {
	return &MarketHandler{
		service: s,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// StatusResponse acknowledges a successful mutation with no payload.
type StatusResponse struct {
	Status string `json:"status"`
}

// CreateShipmentRequest is the body for posting a shipment.
type CreateShipmentRequest struct {
	// CustomerName names the caller's customer profile on first use.
	CustomerName string `json:"customer_name"`
	// ShipmentName is the shipment display name.
	ShipmentName string `json:"shipment_name"`
	// HashedSecret is the lowercase hex SHA-256 digest of the delivery secret.
	HashedSecret string `json:"hashed_secret"`
	// Info holds the commercial terms.
	Info domain.ShipmentInfo `json:"info"`
}

// CreateShipmentResponse carries the assigned id.
type CreateShipmentResponse struct {
	ShipmentID uint64 `json:"shipment_id"`
}

// BuyShipmentRequest is the body for buying a shipment.
type BuyShipmentRequest struct {
	// CarrierName names the caller's carrier profile on first use.
	CarrierName string `json:"carrier_name"`
}

// FinalizeShipmentRequest is the body for confirming delivery.
type FinalizeShipmentRequest struct {
	// Secret is the pre-shared delivery secret; the owning customer may omit it.
	Secret *string `json:"secret,omitempty"`
}

// UserShipmentsResponse splits the caller's shipments by role.
type UserShipmentsResponse struct {
	AsCarrier  []domain.Shipment `json:"as_carrier"`
	AsCustomer []domain.Shipment `json:"as_customer"`
}

// RolesResponse reports which registries hold the caller.
type RolesResponse struct {
	IsCarrier  bool `json:"is_carrier"`
	IsCustomer bool `json:"is_customer"`
}

// CreateShipment godoc
// @Summary Post a new shipment
// @Description Creates a shipment in PENDING owned by the authenticated caller.
// @Tags shipments
// @Accept json
// @Produce json
// @Param request body CreateShipmentRequest true "Shipment to post"
// @Success 201 {object} CreateShipmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipments [post]
func (h *MarketHandler) CreateShipment(c *fiber.Ctx) error {
	var req CreateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	id, err := h.service.CreateShipment(identity.FromCtx(c), req.CustomerName, req.ShipmentName, req.HashedSecret, req.Info)
	if err != nil {
		return h.writeError(c, err, "create shipment")
	}

	return c.Status(http.StatusCreated).JSON(CreateShipmentResponse{ShipmentID: id})
}

// BuyShipment godoc
// @Summary Buy a pending shipment
// @Description Assigns the authenticated caller as carrier and moves the shipment to IN_TRANSIT.
// @Tags shipments
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param request body BuyShipmentRequest true "Carrier profile name"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipments/{id}/buy [post]
func (h *MarketHandler) BuyShipment(c *fiber.Ctx) error {
	id, ok := shipmentID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "shipment id must be a non-negative integer",
			RayID:   rayID(c),
		})
	}

	var req BuyShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	if err := h.service.BuyShipment(identity.FromCtx(c), req.CarrierName, id); err != nil {
		return h.writeError(c, err, "buy shipment")
	}

	return c.JSON(StatusResponse{Status: "ok"})
}

// FinalizeShipment godoc
// @Summary Confirm delivery of a shipment
// @Description Moves an in-transit shipment to DELIVERED. The owning customer needs no secret; any other caller must present the pre-shared secret.
// @Tags shipments
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param request body FinalizeShipmentRequest false "Optional bearer secret"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipments/{id}/finalize [post]
func (h *MarketHandler) FinalizeShipment(c *fiber.Ctx) error {
	id, ok := shipmentID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "shipment id must be a non-negative integer",
			RayID:   rayID(c),
		})
	}

	var req FinalizeShipmentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "invalid request body",
				RayID:   rayID(c),
			})
		}
	}

	if err := h.service.FinalizeShipment(identity.FromCtx(c), id, req.Secret); err != nil {
		return h.writeError(c, err, "finalize shipment")
	}

	return c.JSON(StatusResponse{Status: "ok"})
}

// ListShipments godoc
// @Summary List every shipment
// @Tags shipments
// @Produce json
// @Success 200 {array} domain.Shipment
// @Router /shipments [get]
func (h *MarketHandler) ListShipments(c *fiber.Ctx) error {
	return c.JSON(h.service.Shipments())
}

// ListPendingShipments godoc
// @Summary List shipments waiting for a carrier
// @Tags shipments
// @Produce json
// @Success 200 {array} domain.Shipment
// @Router /shipments/pending [get]
func (h *MarketHandler) ListPendingShipments(c *fiber.Ctx) error {
	return c.JSON(h.service.PendingShipments())
}

// ListUserShipments godoc
// @Summary List the caller's shipments, split by role
// @Tags shipments
// @Produce json
// @Success 200 {object} UserShipmentsResponse
// @Security BearerAuth
// @Router /shipments/mine [get]
func (h *MarketHandler) ListUserShipments(c *fiber.Ctx) error {
	asCarrier, asCustomer := h.service.UserShipments(identity.FromCtx(c))
	return c.JSON(UserShipmentsResponse{
		AsCarrier:  asCarrier,
		AsCustomer: asCustomer,
	})
}

// GetShipment godoc
// @Summary Get one shipment by id
// @Tags shipments
// @Produce json
// @Param id path int true "Shipment ID"
// @Success 200 {object} domain.Shipment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shipments/{id} [get]
func (h *MarketHandler) GetShipment(c *fiber.Ctx) error {
	id, ok := shipmentID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "shipment id must be a non-negative integer",
			RayID:   rayID(c),
		})
	}

	shipment, found := h.service.Shipment(id)
	if !found {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "shipment not found",
			RayID:   rayID(c),
		})
	}

	return c.JSON(shipment)
}

// Roles godoc
// @Summary Report the caller's marketplace roles
// @Tags roles
// @Produce json
// @Success 200 {object} RolesResponse
// @Security BearerAuth
// @Router /roles [get]
func (h *MarketHandler) Roles(c *fiber.Ctx) error {
	isCarrier, isCustomer := h.service.Roles(identity.FromCtx(c))
	return c.JSON(RolesResponse{
		IsCarrier:  isCarrier,
		IsCustomer: isCustomer,
	})
}

// SaveSnapshot godoc
// @Summary Persist the marketplace stores (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/snapshot [post]
func (h *MarketHandler) SaveSnapshot(c *fiber.Ctx) error {
	if err := h.service.SaveSnapshot(c.Context(), identity.FromCtx(c)); err != nil {
		return h.writeError(c, err, "save snapshot")
	}

	return c.JSON(StatusResponse{Status: "ok"})
}

// writeError maps domain failures to HTTP statuses. ErrInconsistentState and
// anything unrecognized surface as 500 and are logged for operator attention.
func (h *MarketHandler) writeError(c *fiber.Ctx, err error, op string) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrShipmentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidStatus):
		status = http.StatusConflict
	default:
		logger.Get().Error("Marketplace command failed",
			zap.String("operation", op),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID(c),
	})
}

func shipmentID(c *fiber.Ctx) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
