package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veristay/service-admin/internal/application"
	"github.com/veristay/service-admin/internal/common/auth"
	"github.com/veristay/service-admin/internal/common/middleware"
	"github.com/veristay/service-admin/internal/common/response"
)

// ReviewHandler handles HTTP requests for guest reviews.
type ReviewHandler struct {
	service *application.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *application.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// RegisterRoutes registers all review routes on the given router group.
func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	reviews := r.Group("/api/v1/reviews")
	reviews.Use(authMW)
	{
		reviews.POST("", h.CreateReview)
		reviews.GET("", h.ListReviews)
		reviews.GET("/:id", h.GetReview)
		reviews.DELETE("/:id", middleware.RequireRole(auth.RoleAdmin), h.DeleteReview)
	}

	listings := r.Group("/api/v1/listings")
	listings.Use(authMW)
	{
		listings.GET("/:id/reviews", h.GetListingReviews)
	}
}

// CreateReview handles POST /api/v1/reviews.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req application.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateReview(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListReviews handles GET /api/v1/reviews.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	page, limit := parsePagination(c)

	result, err := h.service.ListReviews(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetReview handles GET /api/v1/reviews/:id.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid review ID")
		return
	}

	result, err := h.service.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetListingReviews handles GET /api/v1/listings/:id/reviews.
func (h *ReviewHandler) GetListingReviews(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid listing ID")
		return
	}

	result, err := h.service.GetListingReviews(c.Request.Context(), listingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteReview handles DELETE /api/v1/reviews/:id.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid review ID")
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), reviewID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
