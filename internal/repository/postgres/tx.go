package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/repository"
)

// TxRunner runs callbacks inside a single *sql.Tx, handing them
// transaction-scoped repositories.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner creates a new TxRunner backed by the given database.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// RunInTx begins a transaction, builds transaction-scoped repositories, and
// invokes fn. The transaction is rolled back if fn returns an error or panics,
// committed otherwise.
func (t *TxRunner) RunInTx(ctx context.Context, fn func(r repository.TxRepos) error) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	repos := repository.TxRepos{
		Vehicles:    NewVehicleRepositoryWithTx(tx),
		Drivers:     NewDriverRepositoryWithTx(tx),
		Trips:       NewTripRepositoryWithTx(tx),
		Maintenance: NewMaintenanceRepositoryWithTx(tx),
	}

	if err = fn(repos); err != nil {
		return err
	}

	return tx.Commit()
}

// Ensure TxRunner implements repository.TxRunner.
var _ repository.TxRunner = (*TxRunner)(nil)
