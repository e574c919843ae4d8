package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/service"
)

// ──────────────────────────────────────────────
// 7. EXPENSE LEDGER
// ──────────────────────────────────────────────

func newExpenseEnv() (*service.ExpenseService, *MockExpenseRepository, *MockVehicleRepository) {
	expenseRepo := NewMockExpenseRepository()
	vehicleRepo := NewMockVehicleRepository()
	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID:         "veh-1",
		Name:       "Box Truck 7",
		Plate:      "FLT-100",
		CapacityKg: 1000,
		Status:     domain.VehicleStatusAvailable,
	})
	svc := service.NewExpenseService(expenseRepo, vehicleRepo)
	return svc, expenseRepo, vehicleRepo
}

func TestExpense_RecordDefaultsToFuel(t *testing.T) {
	t.Parallel()

	svc, expenseRepo, _ := newExpenseEnv()

	expense, err := svc.RecordExpense(context.Background(), &domain.Expense{
		VehicleID: "veh-1",
		Amount:    80,
		Liters:    55,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if expense.ID == "" {
		t.Error("expected an assigned ID")
	}
	if expense.Type != domain.ExpenseTypeFuel {
		t.Errorf("expected type fuel, got %s", expense.Type)
	}
	if expense.Date.IsZero() {
		t.Error("expected a defaulted date")
	}
	if expenseRepo.CountExpenses() != 1 {
		t.Errorf("expected 1 expense, got %d", expenseRepo.CountExpenses())
	}
}

func TestExpense_RecordVehicleMustExist(t *testing.T) {
	t.Parallel()

	svc, expenseRepo, _ := newExpenseEnv()

	_, err := svc.RecordExpense(context.Background(), &domain.Expense{
		VehicleID: "veh-missing",
		Amount:    80,
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if expenseRepo.CountExpenses() != 0 {
		t.Errorf("expected no expenses, got %d", expenseRepo.CountExpenses())
	}
}

func TestExpense_RecordRejectsNegativeAmount(t *testing.T) {
	t.Parallel()

	svc, _, _ := newExpenseEnv()

	_, err := svc.RecordExpense(context.Background(), &domain.Expense{
		VehicleID: "veh-1",
		Amount:    -5,
	})

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
}

func TestExpense_RecordRejectsUnknownType(t *testing.T) {
	t.Parallel()

	svc, _, _ := newExpenseEnv()

	_, err := svc.RecordExpense(context.Background(), &domain.Expense{
		VehicleID: "veh-1",
		Type:      "bribes",
		Amount:    10,
	})

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
}

func TestExpense_FindFilters(t *testing.T) {
	t.Parallel()

	svc, expenseRepo, _ := newExpenseEnv()
	now := time.Now()
	expenseRepo.AddExpense(&domain.Expense{ID: "exp-1", VehicleID: "veh-1", Type: domain.ExpenseTypeFuel, Amount: 80, Date: now})
	expenseRepo.AddExpense(&domain.Expense{ID: "exp-2", VehicleID: "veh-1", Type: domain.ExpenseTypeRepair, Amount: 300, Date: now})
	expenseRepo.AddExpense(&domain.Expense{ID: "exp-3", VehicleID: "veh-2", Type: domain.ExpenseTypeFuel, Amount: 60, Date: now})

	fuelOnly, err := svc.FindExpenses(context.Background(), repository.ExpenseFilter{Type: domain.ExpenseTypeFuel})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fuelOnly) != 2 {
		t.Errorf("expected 2 fuel expenses, got %d", len(fuelOnly))
	}

	vehicleOnly, err := svc.FindExpenses(context.Background(), repository.ExpenseFilter{VehicleID: "veh-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicleOnly) != 2 {
		t.Errorf("expected 2 expenses for veh-1, got %d", len(vehicleOnly))
	}
}

func TestExpense_SummarizeVehicleTotals(t *testing.T) {
	t.Parallel()

	svc, expenseRepo, _ := newExpenseEnv()
	expenseRepo.AddExpense(&domain.Expense{ID: "exp-1", VehicleID: "veh-1", Type: domain.ExpenseTypeFuel, Amount: 80})
	expenseRepo.AddExpense(&domain.Expense{ID: "exp-2", VehicleID: "veh-1", Type: domain.ExpenseTypeRepair, Amount: 300})
	expenseRepo.AddExpense(&domain.Expense{ID: "exp-3", VehicleID: "veh-2", Type: domain.ExpenseTypeFuel, Amount: 60})

	summary, err := svc.SummarizeVehicleExpenses(context.Background(), "veh-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Total != 380 {
		t.Errorf("expected total 380, got %.2f", summary.Total)
	}
}
