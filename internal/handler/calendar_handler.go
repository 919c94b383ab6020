package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/application"
	"github.com/veristay/service-admin/internal/common/auth"
	"github.com/veristay/service-admin/internal/common/middleware"
	"github.com/veristay/service-admin/internal/common/response"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// CalendarHandler handles HTTP requests for the booking calendar.
type CalendarHandler struct {
	service *application.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(service *application.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// RegisterRoutes registers all calendar routes on the given router group.
func (h *CalendarHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	listings := r.Group("/api/v1/listings")
	listings.Use(authMW)
	{
		listings.GET("/:id/calendar", h.GetCalendar)
		listings.GET("/:id/calendar/:day", h.GetDayStatus)
		listings.POST("/:id/calendar/block", h.BlockDay)
	}

	blocked := r.Group("/api/v1/blocked-dates")
	blocked.Use(authMW)
	{
		blocked.DELETE("/:id", h.UnblockDay)
	}
}

// GetCalendar handles GET /api/v1/listings/:id/calendar.
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	category, err := listing.ParseCategory(c.Query("category"))
	if err != nil {
		response.BadRequest(c, "category query parameter must be apartment or attraction")
		return
	}

	result, err := h.service.GetCalendar(c.Request.Context(), listingID, category)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetDayStatus handles GET /api/v1/listings/:id/calendar/:day.
func (h *CalendarHandler) GetDayStatus(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	category, err := listing.ParseCategory(c.Query("category"))
	if err != nil {
		response.BadRequest(c, "category query parameter must be apartment or attraction")
		return
	}

	status, err := h.service.GetDayStatus(c.Request.Context(), listingID, category, c.Param("day"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"day": c.Param("day"), "status": status})
}

// BlockDay handles POST /api/v1/listings/:id/calendar/block.
func (h *CalendarHandler) BlockDay(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	var req application.BlockDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.BlockDay(c.Request.Context(), listingID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UnblockDay handles DELETE /api/v1/blocked-dates/:id.
func (h *CalendarHandler) UnblockDay(c *gin.Context) {
	blockedDateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blocked date ID")
		return
	}

	if err := h.service.UnblockDay(c.Request.Context(), blockedDateID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
