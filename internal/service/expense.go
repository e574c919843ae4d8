package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// ExpenseService handles the expense ledger. Expenses have no status and no
// side effects on vehicle or driver state.
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	vehicleRepo repository.VehicleRepository
	now         func() time.Time
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo repository.ExpenseRepository, vehicleRepo repository.VehicleRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		vehicleRepo: vehicleRepo,
		now:         time.Now,
	}
}

// RecordExpense validates and persists a new ledger entry. The referenced
// vehicle must exist.
func (s *ExpenseService) RecordExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense.Type == "" {
		expense.Type = domain.ExpenseTypeFuel
	}
	if expense.Date.IsZero() {
		expense.Date = s.now()
	}

	if errs := expense.Validate(); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.vehicleRepo.GetByID(ctx, expense.VehicleID); err != nil {
		return nil, fmt.Errorf("vehicle %s: %w", expense.VehicleID, err)
	}

	expense.ID = uuid.New().String()
	expense.CreatedAt = s.now()

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// GetExpense retrieves an expense by ID.
func (s *ExpenseService) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	if id == "" {
		return nil, ErrInvalidExpenseID
	}

	return s.expenseRepo.GetByID(ctx, id)
}

// FindExpenses retrieves expenses matching the filter.
func (s *ExpenseService) FindExpenses(ctx context.Context, filter repository.ExpenseFilter) ([]*domain.Expense, error) {
	return s.expenseRepo.Find(ctx, filter)
}

// VehicleExpenseSummary holds the expense total for one vehicle.
type VehicleExpenseSummary struct {
	VehicleID string
	Total     float64
}

// SummarizeVehicleExpenses returns the total expense amount for a vehicle.
func (s *ExpenseService) SummarizeVehicleExpenses(ctx context.Context, vehicleID string) (*VehicleExpenseSummary, error) {
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	total, err := s.expenseRepo.SumByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	return &VehicleExpenseSummary{VehicleID: vehicleID, Total: total}, nil
}
