package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// TripHandler handles HTTP requests for trip dispatch.
type TripHandler struct {
	dispatchService *service.DispatchService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(dispatchService *service.DispatchService) *TripHandler {
	return &TripHandler{dispatchService: dispatchService}
}

// CreateTripRequest is the HTTP request body for dispatching a trip.
type CreateTripRequest struct {
	VehicleID         string  `json:"vehicle"`
	DriverID          string  `json:"driver"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	CargoWeightKg     float64 `json:"cargo_weight_kg"`
	EstimatedFuelCost float64 `json:"estimated_fuel_cost"`
	Status            string  `json:"status"`
}

// SetTripStatusRequest is the HTTP request body for a trip status change.
type SetTripStatusRequest struct {
	Status string `json:"status"`
}

// TripResponse is the HTTP response for trip operations.
type TripResponse struct {
	ID                string  `json:"id"`
	VehicleID         string  `json:"vehicle"`
	DriverID          string  `json:"driver"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	CargoWeightKg     float64 `json:"cargo_weight_kg"`
	EstimatedFuelCost float64 `json:"estimated_fuel_cost,omitempty"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
}

func toTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		ID:                t.ID,
		VehicleID:         t.VehicleID,
		DriverID:          t.DriverID,
		Origin:            t.Origin,
		Destination:       t.Destination,
		CargoWeightKg:     t.CargoWeightKg,
		EstimatedFuelCost: t.EstimatedFuelCost,
		Status:            string(t.Status),
		CreatedAt:         t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Create handles POST /v1/trips
func (h *TripHandler) Create(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.dispatchService.CreateTrip(c.Request.Context(), service.CreateTripRequest{
		VehicleID:         req.VehicleID,
		DriverID:          req.DriverID,
		Origin:            req.Origin,
		Destination:       req.Destination,
		CargoWeightKg:     req.CargoWeightKg,
		EstimatedFuelCost: req.EstimatedFuelCost,
		InitialStatus:     domain.TripStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toTripResponse(trip))
}

// SetStatus handles PUT /v1/trips/:id/status
func (h *TripHandler) SetStatus(c *gin.Context) {
	var req SetTripStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.dispatchService.SetTripStatus(c.Request.Context(),
		c.Param("id"), domain.TripStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// Get handles GET /v1/trips/:id
func (h *TripHandler) Get(c *gin.Context) {
	trip, err := h.dispatchService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// GetAll handles GET /v1/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	trips, err := h.dispatchService.GetAllTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		response = append(response, toTripResponse(t))
	}

	respondJSON(c, http.StatusOK, response)
}
