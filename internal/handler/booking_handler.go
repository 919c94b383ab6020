package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/application"
	"github.com/veristay/service-admin/internal/common/auth"
	"github.com/veristay/service-admin/internal/common/middleware"
	"github.com/veristay/service-admin/internal/common/response"
	bookingDomain "github.com/veristay/service-admin/internal/domain/booking"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	bookings := r.Group("/api/v1/bookings")
	bookings.Use(authMW)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("/:id/confirm", h.ConfirmBooking)
		bookings.POST("/:id/complete", h.CompleteBooking)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.DELETE("/:id", middleware.RequireRole(auth.RoleAdmin), h.DeleteBooking)
	}

	listings := r.Group("/api/v1/listings")
	listings.Use(authMW)
	{
		listings.GET("/:id/bookings", h.GetListingBookings)
	}
}

// CreateBooking handles POST /api/v1/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListBookings handles GET /api/v1/bookings. Supports ?category=,
// ?window=active|expired, ?sort=created_at|total_price and ?order=asc|desc.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := bookingDomain.ListFilter{
		Category: parseCategoryQuery(c),
		Window:   c.Query("window"),
	}
	sort := bookingDomain.ListSort{
		Field:     c.DefaultQuery("sort", "created_at"),
		Ascending: c.Query("order") == "asc",
	}

	result, err := h.service.ListBookings(c.Request.Context(), filter, sort, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetBooking handles GET /api/v1/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ConfirmBooking handles POST /api/v1/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.service.ConfirmBooking)
}

// CompleteBooking handles POST /api/v1/bookings/:id/complete.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.transition(c, h.service.CompleteBooking)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.service.CancelBooking)
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (*application.BookingDTO, error)) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := apply(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBooking handles DELETE /api/v1/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetListingBookings handles GET /api/v1/listings/:id/bookings.
func (h *BookingHandler) GetListingBookings(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	result, err := h.service.GetListingBookings(c.Request.Context(), listingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
