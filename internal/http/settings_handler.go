package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ticoship/rate-service/internal/domain/dto"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/i18n"
	"github.com/ticoship/rate-service/internal/middleware"
	"github.com/ticoship/rate-service/internal/service"
)

// SettingsHandler provides HTTP handlers for method settings management.
type SettingsHandler struct {
	settings service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// knownVariant reports whether the URL variant names a configured method.
func knownVariant(variant string) bool {
	switch variant {
	case model.VariantPymexpress, model.VariantCCRSimple:
		return true
	}
	return false
}

// Get handles GET /api/settings/:variant requests.
//
// @Summary      Get method settings
// @Description  Returns the effective settings for one shipping method variant. Defaults are served when no stored configuration exists.
// @Tags         Settings
// @Produce      json
// @Param        variant path string true "Method variant" Enums(pymexpress, ccr-simple)
// @Success      200 {object} dto.SuccessResponse "Effective settings"
// @Failure      404 {object} dto.ErrorResponse "Unknown variant"
// @Router       /api/settings/{variant} [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	variant := c.Param("variant")
	if !knownVariant(variant) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(h.settings.Get(c.Request.Context(), variant))
}

// Update handles PUT /api/settings/:variant requests.
//
// @Summary      Update method settings
// @Description  Replaces the stored settings for one shipping method variant. The variant in the URL wins over the one in the body.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        variant path string true "Method variant" Enums(pymexpress, ccr-simple)
// @Param        request body dto.UpdateSettingsRequest true "New settings"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Stored settings"
// @Failure      400 {object} dto.ErrorResponse "Invalid settings payload"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Unknown variant"
// @Failure      503 {object} dto.ErrorResponse "Persistence disabled"
// @Security     BearerAuth
// @Router       /api/settings/{variant} [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	variant := c.Param("variant")
	if !knownVariant(variant) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	req.Variant = variant
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationSettings, err)
		return
	}

	updatedBy := req.UpdatedBy
	if subject := middleware.GetSubject(c); subject != "" {
		updatedBy = subject
	}

	if err := h.settings.Update(c.Request.Context(), req.Settings, updatedBy); err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.ErrorWithMessage(http.StatusServiceUnavailable, "settings persistence is disabled", err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(h.settings.Get(c.Request.Context(), variant))
}
