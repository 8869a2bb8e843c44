package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/example/lister/internal/ports/secondary"
)

const budgetKey = "budget"

// BudgetRepository implements secondary.BudgetRepository on the settings table.
type BudgetRepository struct {
	db *sql.DB
}

// NewBudgetRepository creates a new SQLite budget repository.
func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Get returns the stored budget, 0 when unset.
func (r *BudgetRepository) Get(ctx context.Context) (float64, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", budgetKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get budget: %w", err)
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("stored budget %q is not a number: %w", raw, err)
	}

	return amount, nil
}

// Set stores the budget.
func (r *BudgetRepository) Set(ctx context.Context, amount float64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		budgetKey, strconv.FormatFloat(amount, 'f', -1, 64),
	)
	if err != nil {
		return fmt.Errorf("failed to set budget: %w", err)
	}
	return nil
}

// Ensure BudgetRepository implements the interface.
var _ secondary.BudgetRepository = (*BudgetRepository)(nil)
