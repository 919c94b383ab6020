package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/application"
	"github.com/veristay/service-admin/internal/common/auth"
	"github.com/veristay/service-admin/internal/common/middleware"
	"github.com/veristay/service-admin/internal/common/response"
	"github.com/veristay/service-admin/internal/domain/taxi"
)

// TaxiHandler handles HTTP requests for the airport-taxi fleet and
// its transfer bookings.
type TaxiHandler struct {
	service *application.TaxiService
}

// NewTaxiHandler creates a new TaxiHandler.
func NewTaxiHandler(service *application.TaxiService) *TaxiHandler {
	return &TaxiHandler{service: service}
}

// RegisterRoutes registers all taxi routes on the given router group.
func (h *TaxiHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	taxis := r.Group("/api/v1/taxis")
	taxis.Use(authMW)
	{
		taxis.POST("", middleware.RequireRole(auth.RoleAdmin), h.CreateTaxi)
		taxis.GET("", h.ListTaxis)
		taxis.GET("/:id", h.GetTaxi)
		taxis.PATCH("/:id", h.UpdateTaxi)
		taxis.DELETE("/:id", middleware.RequireRole(auth.RoleAdmin), h.DeleteTaxi)
	}

	transfers := r.Group("/api/v1/taxi-bookings")
	transfers.Use(authMW)
	{
		transfers.POST("", h.CreateTaxiBooking)
		transfers.GET("", h.ListTaxiBookings)
		transfers.GET("/:id", h.GetTaxiBooking)
		transfers.POST("/:id/complete", h.CompleteTaxiBooking)
		transfers.POST("/:id/cancel", h.CancelTaxiBooking)
		transfers.DELETE("/:id", middleware.RequireRole(auth.RoleAdmin), h.DeleteTaxiBooking)
	}
}

// CreateTaxi handles POST /api/v1/taxis.
func (h *TaxiHandler) CreateTaxi(c *gin.Context) {
	var req application.CreateTaxiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateTaxi(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListTaxis handles GET /api/v1/taxis.
func (h *TaxiHandler) ListTaxis(c *gin.Context) {
	page, limit := parsePagination(c)

	result, err := h.service.ListTaxis(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetTaxi handles GET /api/v1/taxis/:id.
func (h *TaxiHandler) GetTaxi(c *gin.Context) {
	taxiID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid taxi ID")
		return
	}

	result, err := h.service.GetTaxi(c.Request.Context(), taxiID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateTaxi handles PATCH /api/v1/taxis/:id.
func (h *TaxiHandler) UpdateTaxi(c *gin.Context) {
	taxiID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid taxi ID")
		return
	}

	var req application.UpdateTaxiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateTaxi(c.Request.Context(), taxiID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteTaxi handles DELETE /api/v1/taxis/:id.
func (h *TaxiHandler) DeleteTaxi(c *gin.Context) {
	taxiID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid taxi ID")
		return
	}

	if err := h.service.DeleteTaxi(c.Request.Context(), taxiID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateTaxiBooking handles POST /api/v1/taxi-bookings.
func (h *TaxiHandler) CreateTaxiBooking(c *gin.Context) {
	var req application.CreateTaxiBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateTaxiBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListTaxiBookings handles GET /api/v1/taxi-bookings. Supports ?status=.
func (h *TaxiHandler) ListTaxiBookings(c *gin.Context) {
	page, limit := parsePagination(c)

	var status *taxi.BookingStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := taxi.ParseBookingStatus(raw)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		status = &parsed
	}

	result, err := h.service.ListTaxiBookings(c.Request.Context(), status, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetTaxiBooking handles GET /api/v1/taxi-bookings/:id.
func (h *TaxiHandler) GetTaxiBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid taxi booking ID")
		return
	}

	result, err := h.service.GetTaxiBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CompleteTaxiBooking handles POST /api/v1/taxi-bookings/:id/complete.
func (h *TaxiHandler) CompleteTaxiBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid taxi booking ID")
		return
	}

	result, err := h.service.CompleteTaxiBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CancelTaxiBooking handles POST /api/v1/taxi-bookings/:id/cancel.
func (h *TaxiHandler) CancelTaxiBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid taxi booking ID")
		return
	}

	result, err := h.service.CancelTaxiBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteTaxiBooking handles DELETE /api/v1/taxi-bookings/:id.
func (h *TaxiHandler) DeleteTaxiBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid taxi booking ID")
		return
	}

	if err := h.service.DeleteTaxiBooking(c.Request.Context(), bookingID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
