package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/orderguard/risk-api/internal/api/shared/errors"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondError maps an executor error onto the right status code
func respondError(c *gin.Context, err error, fallback string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(fallback))
		return
	}

	switch apiErr.Code {
	case apierrors.ErrCodeBadRequest:
		c.JSON(http.StatusBadRequest, apiErr)
	case apierrors.ErrCodeNotFound:
		c.JSON(http.StatusNotFound, apiErr)
	case apierrors.ErrCodeValidationFailed:
		c.JSON(http.StatusUnprocessableEntity, apiErr)
	case apierrors.ErrCodeUnauthorized:
		c.JSON(http.StatusUnauthorized, apiErr)
	case apierrors.ErrCodeClassifierError:
		c.JSON(http.StatusBadGateway, apiErr)
	default:
		c.JSON(http.StatusInternalServerError, apiErr)
	}
}
