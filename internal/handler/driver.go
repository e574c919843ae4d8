package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// DriverRequest is the HTTP request body for creating or updating a driver.
type DriverRequest struct {
	Name             string `json:"name"`
	LicenseNumber    string `json:"license_number"`
	LicenseExpiry    string `json:"licenseExpiry"`
	DutyStatus       string `json:"duty_status"`
	SafetyScore      int    `json:"safety_score"`
	PerformanceScore int    `json:"performance_score"`
}

// DriverResponse is the HTTP response for driver operations.
type DriverResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	LicenseNumber    string `json:"license_number"`
	LicenseExpiry    string `json:"licenseExpiry"`
	DutyStatus       string `json:"duty_status"`
	SafetyScore      int    `json:"safety_score"`
	PerformanceScore int    `json:"performance_score"`
	ComplaintsCount  int    `json:"complaints_count"`
	TripsCompleted   int    `json:"tripsCompleted"`
	TripsCancelled   int    `json:"tripsCancelled"`
}

func toDriverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:               d.ID,
		Name:             d.Name,
		LicenseNumber:    d.LicenseNumber,
		LicenseExpiry:    d.LicenseExpiry.Format("2006-01-02"),
		DutyStatus:       string(d.DutyStatus),
		SafetyScore:      d.SafetyScore,
		PerformanceScore: d.PerformanceScore,
		ComplaintsCount:  d.ComplaintsCount,
		TripsCompleted:   d.TripsCompleted,
		TripsCancelled:   d.TripsCancelled,
	}
}

func (r DriverRequest) toDomain(id string) (*domain.Driver, error) {
	var expiry time.Time
	if r.LicenseExpiry != "" {
		var err error
		expiry, err = time.Parse("2006-01-02", r.LicenseExpiry)
		if err != nil {
			return nil, domain.ValidationErrors{"License expiry must be a valid date"}
		}
	}

	return &domain.Driver{
		ID:               id,
		Name:             r.Name,
		LicenseNumber:    r.LicenseNumber,
		LicenseExpiry:    expiry,
		DutyStatus:       domain.DutyStatus(r.DutyStatus),
		SafetyScore:      r.SafetyScore,
		PerformanceScore: r.PerformanceScore,
	}, nil
}

// Register handles POST /v1/drivers
func (h *DriverHandler) Register(c *gin.Context) {
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := req.toDomain("")
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.driverService.RegisterDriver(c.Request.Context(), driver)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toDriverResponse(created))
}

// Get handles GET /v1/drivers/:id
func (h *DriverHandler) Get(c *gin.Context) {
	driver, err := h.driverService.GetDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(driver))
}

// GetAll handles GET /v1/drivers
func (h *DriverHandler) GetAll(c *gin.Context) {
	drivers, err := h.driverService.GetAllDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, toDriverResponse(d))
	}

	respondJSON(c, http.StatusOK, response)
}

// Update handles PUT /v1/drivers/:id
func (h *DriverHandler) Update(c *gin.Context) {
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := req.toDomain(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	// Counters are owned by the dispatch engine; carry them over so a
	// profile edit does not zero them.
	current, err := h.driverService.GetDriver(c.Request.Context(), driver.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	driver.ComplaintsCount = current.ComplaintsCount
	driver.TripsCompleted = current.TripsCompleted
	driver.TripsCancelled = current.TripsCancelled

	updated, err := h.driverService.UpdateDriver(c.Request.Context(), driver)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(updated))
}

// Delete handles DELETE /v1/drivers/:id
func (h *DriverHandler) Delete(c *gin.Context) {
	if err := h.driverService.DeleteDriver(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"message": "Driver deleted"})
}
