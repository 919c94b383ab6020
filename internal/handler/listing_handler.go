package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/application"
	"github.com/veristay/service-admin/internal/common/auth"
	"github.com/veristay/service-admin/internal/common/middleware"
	"github.com/veristay/service-admin/internal/common/response"
	"github.com/veristay/service-admin/internal/domain/listing"
)

// ListingHandler handles HTTP requests for listing management.
type ListingHandler struct {
	service *application.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service *application.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// RegisterRoutes registers all listing routes on the given router group.
func (h *ListingHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	listings := r.Group("/api/v1/listings")
	listings.Use(authMW)
	{
		listings.POST("", middleware.RequireRole(auth.RoleAdmin), h.CreateListing)
		listings.GET("", h.ListListings)
		listings.GET("/:id", h.GetListing)
		listings.PATCH("/:id", h.UpdateListing)
		listings.POST("/:id/close", h.CloseListing)
		listings.POST("/:id/open", h.OpenListing)
		listings.DELETE("/:id", middleware.RequireRole(auth.RoleAdmin), h.DeleteListing)
	}
}

// CreateListing handles POST /api/v1/listings.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req application.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateListing(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListListings handles GET /api/v1/listings.
func (h *ListingHandler) ListListings(c *gin.Context) {
	page, limit := parsePagination(c)
	category := parseCategoryQuery(c)

	result, err := h.service.ListListings(c.Request.Context(), category, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetListing handles GET /api/v1/listings/:id.
func (h *ListingHandler) GetListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	result, err := h.service.GetListing(c.Request.Context(), listingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateListing handles PATCH /api/v1/listings/:id.
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	var req application.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateListing(c.Request.Context(), listingID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CloseListing handles POST /api/v1/listings/:id/close.
func (h *ListingHandler) CloseListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	result, err := h.service.CloseListing(c.Request.Context(), listingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// OpenListing handles POST /api/v1/listings/:id/open.
func (h *ListingHandler) OpenListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	result, err := h.service.OpenListing(c.Request.Context(), listingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteListing handles DELETE /api/v1/listings/:id.
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	if err := h.service.DeleteListing(c.Request.Context(), listingID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// parsePagination extracts page and limit query parameters with defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}

// parseCategoryQuery reads an optional ?category= filter. Unknown values
// are ignored rather than rejected.
func parseCategoryQuery(c *gin.Context) *listing.Category {
	raw := c.Query("category")
	if raw == "" {
		return nil
	}
	category, err := listing.ParseCategory(raw)
	if err != nil {
		return nil
	}
	return &category
}
