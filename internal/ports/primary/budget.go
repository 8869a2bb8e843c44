package primary

import "context"

// BudgetService defines the primary port for the shopping budget.
type BudgetService interface {
	// GetBudget returns the stored budget (0 if never set).
	GetBudget(ctx context.Context) (float64, error)

	// SetBudget stores a new budget.
	SetBudget(ctx context.Context, amount float64) error

	// Summary re-reads every product and computes the remaining budget.
	Summary(ctx context.Context) (*BudgetSummary, error)
}

// BudgetSummary is the remaining-budget view.
type BudgetSummary struct {
	Budget    float64 `json:"budget"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Items     int     `json:"items"`
	Purchased int     `json:"purchased"`
	Overspent bool    `json:"overspent"`
}
