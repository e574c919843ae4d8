package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// MaintenanceHandler handles HTTP requests for maintenance records.
type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// OpenMaintenanceRequest is the HTTP request body for opening a record.
type OpenMaintenanceRequest struct {
	VehicleID   string  `json:"vehicle"`
	ServiceType string  `json:"service_type"`
	Technician  string  `json:"technician"`
	Cost        float64 `json:"cost"`
	Findings    string  `json:"findings"`
}

// ResolveMaintenanceRequest is the HTTP request body for updating a record.
type ResolveMaintenanceRequest struct {
	Status string `json:"status"`
}

// MaintenanceResponse is the HTTP response for maintenance operations.
type MaintenanceResponse struct {
	ID          string  `json:"id"`
	VehicleID   string  `json:"vehicle"`
	ServiceType string  `json:"service_type"`
	Technician  string  `json:"technician,omitempty"`
	Cost        float64 `json:"cost"`
	Findings    string  `json:"findings,omitempty"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

func toMaintenanceResponse(m *domain.Maintenance) MaintenanceResponse {
	return MaintenanceResponse{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		ServiceType: m.ServiceType,
		Technician:  m.Technician,
		Cost:        m.Cost,
		Findings:    m.Findings,
		Status:      string(m.Status),
		Date:        m.Date.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Open handles POST /v1/maintenance
func (h *MaintenanceHandler) Open(c *gin.Context) {
	var req OpenMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.maintenanceService.OpenMaintenance(c.Request.Context(), service.OpenMaintenanceRequest{
		VehicleID:   req.VehicleID,
		ServiceType: req.ServiceType,
		Technician:  req.Technician,
		Cost:        req.Cost,
		Findings:    req.Findings,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toMaintenanceResponse(record))
}

// Resolve handles PUT /v1/maintenance/:id
func (h *MaintenanceHandler) Resolve(c *gin.Context) {
	var req ResolveMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Status != "" && req.Status != string(domain.MaintenanceStatusResolved) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status must be resolved"})
		return
	}

	record, err := h.maintenanceService.ResolveMaintenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toMaintenanceResponse(record))
}

// Delete handles DELETE /v1/maintenance/:id
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	if err := h.maintenanceService.DeleteMaintenance(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"message": "Maintenance record deleted"})
}

// Get handles GET /v1/maintenance/:id
func (h *MaintenanceHandler) Get(c *gin.Context) {
	record, err := h.maintenanceService.GetMaintenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toMaintenanceResponse(record))
}

// GetAll handles GET /v1/maintenance
func (h *MaintenanceHandler) GetAll(c *gin.Context) {
	records, err := h.maintenanceService.GetAllMaintenance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]MaintenanceResponse, 0, len(records))
	for _, m := range records {
		response = append(response, toMaintenanceResponse(m))
	}

	respondJSON(c, http.StatusOK, response)
}
