package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/veristay/service-admin/internal/application"
	"github.com/veristay/service-admin/internal/common/auth"
	"github.com/veristay/service-admin/internal/common/middleware"
	"github.com/veristay/service-admin/internal/common/response"
)

// AdminHandler serves the dashboard's aggregate endpoints.
type AdminHandler struct {
	stats *application.StatsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(stats *application.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// RegisterRoutes registers all dashboard routes on the given router group.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	dashboard := r.Group("/api/v1/dashboard")
	dashboard.Use(authMW)
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/bookings/monthly", h.GetMonthlyBookingCounts)
		dashboard.GET("/bookings/recent", h.GetRecentBookings)
	}
}

// GetStats handles GET /api/v1/dashboard/stats.
func (h *AdminHandler) GetStats(c *gin.Context) {
	result, err := h.stats.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetMonthlyBookingCounts handles GET /api/v1/dashboard/bookings/monthly.
// Supports ?months= (default 12).
func (h *AdminHandler) GetMonthlyBookingCounts(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))

	result, err := h.stats.GetMonthlyBookingCounts(c.Request.Context(), months)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetRecentBookings handles GET /api/v1/dashboard/bookings/recent.
// Supports ?limit= (default 5) and ?category=.
func (h *AdminHandler) GetRecentBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	result, err := h.stats.GetRecentBookings(c.Request.Context(), limit, parseCategoryQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
