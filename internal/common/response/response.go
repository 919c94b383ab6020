package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veristay/service-admin/internal/common/domain"
)

// Success writes a 200 response with the payload under "data".
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Created writes a 201 response with the payload under "data".
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Paginated writes a 200 response with items and paging metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"data": items,
		"pagination": gin.H{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// Error maps an application error to the appropriate HTTP status.
// Untyped errors become 500 without leaking internals.
func Error(c *gin.Context, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	}

	c.JSON(status, gin.H{"error": appErr.Message})
}
