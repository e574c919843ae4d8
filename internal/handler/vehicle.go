package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// VehicleHandler handles HTTP requests for vehicles.
type VehicleHandler struct {
	fleetService *service.FleetService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(fleetService *service.FleetService) *VehicleHandler {
	return &VehicleHandler{fleetService: fleetService}
}

// VehicleRequest is the HTTP request body for creating or updating a vehicle.
type VehicleRequest struct {
	Name       string  `json:"name"`
	Plate      string  `json:"plate"`
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	Year       int     `json:"year"`
	Type       string  `json:"type"`
	CapacityKg float64 `json:"capacity"`
	Odometer   float64 `json:"odometer"`
	Status     string  `json:"status"`
}

// VehicleResponse is the HTTP response for vehicle operations.
type VehicleResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Plate      string  `json:"plate"`
	Make       string  `json:"make,omitempty"`
	Model      string  `json:"model,omitempty"`
	Year       int     `json:"year,omitempty"`
	Type       string  `json:"type"`
	CapacityKg float64 `json:"capacity"`
	Odometer   float64 `json:"odometer"`
	Status     string  `json:"status"`
}

func toVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID,
		Name:       v.Name,
		Plate:      v.Plate,
		Make:       v.Make,
		Model:      v.Model,
		Year:       v.Year,
		Type:       string(v.Type),
		CapacityKg: v.CapacityKg,
		Odometer:   v.Odometer,
		Status:     string(v.Status),
	}
}

// Register handles POST /v1/vehicles
func (h *VehicleHandler) Register(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	vehicle, err := h.fleetService.RegisterVehicle(c.Request.Context(), &domain.Vehicle{
		Name:       req.Name,
		Plate:      req.Plate,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Type:       domain.VehicleType(req.Type),
		CapacityKg: req.CapacityKg,
		Odometer:   req.Odometer,
		Status:     domain.VehicleStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toVehicleResponse(vehicle))
}

// Get handles GET /v1/vehicles/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	vehicle, err := h.fleetService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toVehicleResponse(vehicle))
}

// GetAll handles GET /v1/vehicles
func (h *VehicleHandler) GetAll(c *gin.Context) {
	status := domain.VehicleStatus(c.Query("status"))

	vehicles, err := h.fleetService.GetAllVehicles(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		response = append(response, toVehicleResponse(v))
	}

	respondJSON(c, http.StatusOK, response)
}

// Update handles PUT /v1/vehicles/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	vehicle, err := h.fleetService.UpdateVehicle(c.Request.Context(), &domain.Vehicle{
		ID:         c.Param("id"),
		Name:       req.Name,
		Plate:      req.Plate,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Type:       domain.VehicleType(req.Type),
		CapacityKg: req.CapacityKg,
		Odometer:   req.Odometer,
		Status:     domain.VehicleStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toVehicleResponse(vehicle))
}

// Delete handles DELETE /v1/vehicles/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.fleetService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"message": "Vehicle deleted"})
}
