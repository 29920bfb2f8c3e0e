package handler

import (
	"net/http"

	"webforge_backend/internal/catalog/service"
	"webforge_backend/internal/catalog/transport"
	"webforge_backend/platform/httpkit"
	"webforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for the catalog
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new catalog handler
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterPublicRoutes registers the visitor-facing catalog routes
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetCatalog)
	rg.GET("/assets", h.ListAssets)
	rg.GET("/assets/:id/download-url", h.AssetDownloadURL)
}

// RegisterAdminRoutes registers the back-office catalog routes
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetAdminCatalog)
	rg.PUT("/services/:id", h.UpsertService)
	rg.PUT("/features/:id", h.UpsertFeature)
	rg.PUT("/timelines/:id", h.UpsertTimeline)
	rg.PUT("/settings", h.UpdateSettings)

	rg.POST("/assets/upload-url", h.CreateAssetUploadURL)
	rg.POST("/assets", h.RecordAsset)
	rg.DELETE("/assets/:id", h.DeleteAsset)
}

// GetCatalog handles GET /api/v1/public/catalog
func (h *Handler) GetCatalog(c *gin.Context) {
	result, err := h.svc.GetPublicCatalog(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetAdminCatalog handles GET /api/v1/admin/catalog
func (h *Handler) GetAdminCatalog(c *gin.Context) {
	result, err := h.svc.GetAdminCatalog(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// UpsertService handles PUT /api/v1/admin/catalog/services/:id
func (h *Handler) UpsertService(c *gin.Context) {
	var req transport.UpsertServiceRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	if httpkit.HandleError(c, h.svc.UpsertService(c.Request.Context(), c.Param("id"), req)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "ok"})
}

// UpsertFeature handles PUT /api/v1/admin/catalog/features/:id
func (h *Handler) UpsertFeature(c *gin.Context) {
	var req transport.UpsertFeatureRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	if httpkit.HandleError(c, h.svc.UpsertFeature(c.Request.Context(), c.Param("id"), req)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "ok"})
}

// UpsertTimeline handles PUT /api/v1/admin/catalog/timelines/:id
func (h *Handler) UpsertTimeline(c *gin.Context) {
	var req transport.UpsertTimelineRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	if httpkit.HandleError(c, h.svc.UpsertTimeline(c.Request.Context(), c.Param("id"), req)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "ok"})
}

// UpdateSettings handles PUT /api/v1/admin/catalog/settings
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req transport.UpdateSettingsRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	if httpkit.HandleError(c, h.svc.UpdateSettings(c.Request.Context(), req)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "ok"})
}

// CreateAssetUploadURL handles POST /api/v1/admin/catalog/assets/upload-url
func (h *Handler) CreateAssetUploadURL(c *gin.Context) {
	var req transport.CreateAssetUploadRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	result, err := h.svc.CreateAssetUploadURL(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// RecordAsset handles POST /api/v1/admin/catalog/assets
func (h *Handler) RecordAsset(c *gin.Context) {
	var req transport.CreateAssetRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	result, err := h.svc.RecordAsset(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// ListAssets handles GET /api/v1/public/catalog/assets
func (h *Handler) ListAssets(c *gin.Context) {
	result, err := h.svc.ListAssets(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// AssetDownloadURL handles GET /api/v1/public/catalog/assets/:id/download-url
func (h *Handler) AssetDownloadURL(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.AssetDownloadURL(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// DeleteAsset handles DELETE /api/v1/admin/catalog/assets/:id
func (h *Handler) DeleteAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if httpkit.HandleError(c, h.svc.DeleteAsset(c.Request.Context(), id)) {
		return
	}
	httpkit.OK(c, gin.H{"status": "deleted"})
}

func (h *Handler) bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return false
	}
	return true
}
