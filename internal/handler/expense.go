package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// ExpenseHandler handles HTTP requests for the expense ledger.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest is the HTTP request body for recording an expense.
type ExpenseRequest struct {
	VehicleID   string  `json:"vehicle"`
	DriverID    string  `json:"driver"`
	TripID      string  `json:"trip"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Liters      float64 `json:"liters"`
	Notes       string  `json:"notes"`
	Date        string  `json:"date"`
}

// ExpenseResponse is the HTTP response for expense operations.
type ExpenseResponse struct {
	ID          string  `json:"id"`
	VehicleID   string  `json:"vehicle"`
	DriverID    string  `json:"driver,omitempty"`
	TripID      string  `json:"trip,omitempty"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Liters      float64 `json:"liters,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Date        string  `json:"date"`
}

func toExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		VehicleID: e.VehicleID,
		DriverID:  e.DriverID,
		TripID:    e.TripID,
		Type:      string(e.Type),
		Amount:    e.Amount,
		Liters:    e.Liters,
		Notes:     e.Notes,
		Date:      e.Date.Format("2006-01-02"),
	}
}

// Record handles POST /v1/expenses
func (h *ExpenseHandler) Record(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			respondError(c, domain.ValidationErrors{"Date must be a valid date"})
			return
		}
	}

	expense, err := h.expenseService.RecordExpense(c.Request.Context(), &domain.Expense{
		VehicleID: req.VehicleID,
		DriverID:  req.DriverID,
		TripID:    req.TripID,
		Type:      domain.ExpenseType(req.Type),
		Amount:    req.Amount,
		Liters:    req.Liters,
		Notes:     req.Notes,
		Date:      date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toExpenseResponse(expense))
}

// Get handles GET /v1/expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	expense, err := h.expenseService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toExpenseResponse(expense))
}

// Find handles GET /v1/expenses with optional vehicle, driver, and type filters.
func (h *ExpenseHandler) Find(c *gin.Context) {
	filter := repository.ExpenseFilter{
		VehicleID: c.Query("vehicle"),
		DriverID:  c.Query("driver"),
		Type:      domain.ExpenseType(c.Query("type")),
	}

	expenses, err := h.expenseService.FindExpenses(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		response = append(response, toExpenseResponse(e))
	}

	respondJSON(c, http.StatusOK, response)
}

// Summary handles GET /v1/expenses/summary/:vehicle_id
func (h *ExpenseHandler) Summary(c *gin.Context) {
	summary, err := h.expenseService.SummarizeVehicleExpenses(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"vehicle": summary.VehicleID,
		"total":   summary.Total,
	})
}
