package controllers

import (
	"errors"
	"net/http"

	"DocTrackerGo/config"
	"DocTrackerGo/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to a status code and the JSON error body.
func respondError(c *gin.Context, err error) {
	status, message := classifyError(err)
	if status >= http.StatusInternalServerError {
		config.Logger.Errorw("request failed",
			"error", err,
			"path", c.Request.URL.Path,
			"uid", c.GetString("uid"),
		)
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"message": message},
	})
}

func classifyError(err error) (int, string) {
	var rangeErr *services.InvalidRangeError
	var calcErr *services.CalculationError

	switch {
	case errors.As(err, &rangeErr):
		return http.StatusBadRequest, rangeErr.Error()
	case errors.As(err, &calcErr):
		return http.StatusInternalServerError, "Error calculating productivity metrics"
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "The requested resource was not found"
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict, err.Error()
	}
	return http.StatusInternalServerError, "An internal server error occurred"
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   gin.H{"message": "Invalid request: " + err.Error()},
	})
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
