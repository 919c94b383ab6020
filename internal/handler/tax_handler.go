package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/application"
	"github.com/veristay/service-admin/internal/common/auth"
	"github.com/veristay/service-admin/internal/common/middleware"
	"github.com/veristay/service-admin/internal/common/response"
	"github.com/veristay/service-admin/internal/domain/tax"
)

// TaxHandler handles HTTP requests for tax configuration.
type TaxHandler struct {
	service *application.TaxService
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(service *application.TaxService) *TaxHandler {
	return &TaxHandler{service: service}
}

// RegisterRoutes registers all tax routes on the given router group.
// Tax configuration is admin-only apart from quotes.
func (h *TaxHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	taxes := r.Group("/api/v1/taxes")
	taxes.Use(authMW)
	{
		taxes.POST("", middleware.RequireRole(auth.RoleAdmin), h.CreateTax)
		taxes.GET("", h.ListTaxes)
		taxes.GET("/:id", h.GetTax)
		taxes.PATCH("/:id", middleware.RequireRole(auth.RoleAdmin), h.UpdateTax)
		taxes.DELETE("/:id", middleware.RequireRole(auth.RoleAdmin), h.DeleteTax)
		taxes.POST("/quote", h.QuoteTaxes)
	}
}

// CreateTax handles POST /api/v1/taxes.
func (h *TaxHandler) CreateTax(c *gin.Context) {
	var req application.CreateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateTax(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListTaxes handles GET /api/v1/taxes. Supports ?applicability=.
func (h *TaxHandler) ListTaxes(c *gin.Context) {
	var applicability *tax.Applicability
	if raw := c.Query("applicability"); raw != "" {
		a := tax.Applicability(raw)
		if !a.IsValid() {
			response.BadRequest(c, "invalid applicability filter")
			return
		}
		applicability = &a
	}

	result, err := h.service.ListTaxes(c.Request.Context(), applicability)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetTax handles GET /api/v1/taxes/:id.
func (h *TaxHandler) GetTax(c *gin.Context) {
	taxID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tax ID")
		return
	}

	result, err := h.service.GetTax(c.Request.Context(), taxID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateTax handles PATCH /api/v1/taxes/:id.
func (h *TaxHandler) UpdateTax(c *gin.Context) {
	taxID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tax ID")
		return
	}

	var req application.UpdateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateTax(c.Request.Context(), taxID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteTax handles DELETE /api/v1/taxes/:id.
func (h *TaxHandler) DeleteTax(c *gin.Context) {
	taxID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tax ID")
		return
	}

	if err := h.service.DeleteTax(c.Request.Context(), taxID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// QuoteTaxes handles POST /api/v1/taxes/quote.
func (h *TaxHandler) QuoteTaxes(c *gin.Context) {
	var req application.TaxQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.QuoteTaxes(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
