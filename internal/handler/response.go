package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the full list of field violations.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: verrs})
		return
	}

	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidVehicleID),
		errors.Is(err, service.ErrInvalidDriverID),
		errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidMaintenanceID),
		errors.Is(err, service.ErrInvalidExpenseID),
		errors.Is(err, service.ErrInvalidCargoWeight),
		errors.Is(err, service.ErrInvalidTripStatus):
		return http.StatusBadRequest

	// Conflict errors - business rule violations
	case errors.Is(err, service.ErrVehicleUnavailable),
		errors.Is(err, service.ErrDriverSuspended),
		errors.Is(err, service.ErrLicenseExpired),
		errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrDispatchContention),
		errors.Is(err, service.ErrVehicleInUse),
		errors.Is(err, service.ErrPlateExists),
		errors.Is(err, service.ErrLicenseNumberExists),
		errors.Is(err, service.ErrEmailExists):
		return http.StatusConflict

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
