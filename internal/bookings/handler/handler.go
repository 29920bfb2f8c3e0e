package handler

import (
	"net/http"

	"webforge_backend/internal/bookings/service"
	"webforge_backend/internal/bookings/transport"
	"webforge_backend/platform/httpkit"
	"webforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for bookings
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new bookings handler
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterPublicRoutes registers the visitor-facing wizard routes
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup, submitLimiter gin.HandlerFunc) {
	rg.GET("/meeting-types", h.ListMeetingTypes)
	rg.GET("/slots", h.GetAvailableSlots)
	if submitLimiter != nil {
		rg.POST("", submitLimiter, h.Create)
	} else {
		rg.POST("", h.Create)
	}
}

// RegisterAdminRoutes registers the back-office routes
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id/status", h.UpdateStatus)
}

// ListMeetingTypes handles GET /api/v1/public/bookings/meeting-types
func (h *Handler) ListMeetingTypes(c *gin.Context) {
	result, err := h.svc.ListMeetingTypes(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetAvailableSlots handles GET /api/v1/public/bookings/slots
func (h *Handler) GetAvailableSlots(c *gin.Context) {
	result, err := h.svc.GetAvailableSlots(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Create handles POST /api/v1/public/bookings
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, result)
}

// List handles GET /api/v1/admin/bookings
func (h *Handler) List(c *gin.Context) {
	var req transport.ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}

	result, err := h.svc.List(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// GetByID handles GET /api/v1/admin/bookings/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// UpdateStatus handles PATCH /api/v1/admin/bookings/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.UpdateStatus(c.Request.Context(), id, identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
