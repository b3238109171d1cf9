// Package http wires the Gin handlers and router for the rate service.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ticoship/rate-service/internal/domain/dto"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/i18n"
	"github.com/ticoship/rate-service/internal/middleware"
	"github.com/ticoship/rate-service/internal/rate"
	"github.com/ticoship/rate-service/internal/service"
	"github.com/ticoship/rate-service/internal/units"
)

// allVariants lists the configured shipping method variants in the order
// their rates are returned.
var allVariants = []string{model.VariantPymexpress, model.VariantCCRSimple}

// Handler provides HTTP handlers for the quoting routes.
type Handler struct {
	calculator *rate.Calculator
	settings   service.SettingsService
	audit      service.AuditService
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAuditService attaches a quote audit writer to the handler.
func WithAuditService(audit service.AuditService) HandlerOption {
	return func(h *Handler) {
		h.audit = audit
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator *rate.Calculator, settings service.SettingsService, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator: calculator,
		settings:   settings,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Quote handles POST /api/quote requests.
//
// @Summary      Quote shipping rates for a cart
// @Description  Computes shipping rates for the given destination and items across the configured method variants. Weight is aggregated per cart, rounded to the carrier's billing increments, priced against the remote tariff service and adjusted by the configured business rules. A carrier rejection degrades to a zero-cost rate carrying the carrier's message.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Cart information"
// @Success      200 {object} dto.SuccessResponse "Computed rates"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, validationKeyFor(err), err)
		return
	}

	pkg := req.ToPackage()
	variants := req.Variants
	if len(variants) == 0 {
		variants = allVariants
	}

	ctx := c.Request.Context()
	rates := make([]model.RateRecord, 0, len(variants))
	for _, variant := range variants {
		settings := h.settings.Get(ctx, variant)

		record := h.calculator.Quote(ctx, pkg, settings)
		if record == nil {
			continue
		}

		weights := rate.AggregateWeight(pkg.Items, units.Parse(settings.WeightUnit))
		kept := rate.ApplyMaxWeightGuard([]model.RateRecord{*record}, weights.Label(), settings)
		if len(kept) == 0 {
			continue
		}

		rates = append(rates, kept[0])
		h.auditQuote(c, pkg, kept[0])
	}

	builder.SuccessOK(dto.QuoteResponse{Rates: rates})
}

// auditQuote records an emitted rate through the async audit writer.
func (h *Handler) auditQuote(c *gin.Context, pkg model.Package, record model.RateRecord) {
	if h.audit == nil {
		return
	}

	outcome := "priced"
	switch {
	case record.FreeShipping:
		outcome = "free"
	case record.Cost.IsZero():
		outcome = "degraded"
	}

	h.audit.LogQuote(&model.QuoteLog{
		Timestamp:    time.Now(),
		RequestID:    middleware.GetRequestID(c),
		Variant:      record.ID,
		Country:      pkg.Destination.Country,
		PostalCode:   pkg.Destination.PostalCode,
		WeightGrams:  record.WeightGrams,
		Cost:         record.Cost.String(),
		Label:        record.Label,
		FreeShipping: record.FreeShipping,
		Outcome:      outcome,
	})
}

// validationKeyFor maps a request validation error to its message key.
func validationKeyFor(err error) string {
	switch {
	case errors.Is(err, dto.ErrMissingItems):
		return i18n.ErrKeyValidationItems
	case errors.Is(err, dto.ErrMissingCountry):
		return i18n.ErrKeyValidationDestination
	case errors.Is(err, dto.ErrUnknownVariant):
		return i18n.ErrKeyValidationVariant
	default:
		return i18n.ErrKeyInvalidRequestBody
	}
}
