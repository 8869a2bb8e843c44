package app

import (
	"context"
	"fmt"

	corebudget "github.com/example/lister/internal/core/budget"
	"github.com/example/lister/internal/ports/primary"
	"github.com/example/lister/internal/ports/secondary"
)

// BudgetServiceImpl implements the BudgetService interface.
type BudgetServiceImpl struct {
	budgetRepo  secondary.BudgetRepository
	productRepo secondary.ProductRepository
}

// NewBudgetService creates a new BudgetService with injected dependencies.
func NewBudgetService(budgetRepo secondary.BudgetRepository, productRepo secondary.ProductRepository) *BudgetServiceImpl {
	return &BudgetServiceImpl{
		budgetRepo:  budgetRepo,
		productRepo: productRepo,
	}
}

// GetBudget returns the stored budget.
func (s *BudgetServiceImpl) GetBudget(ctx context.Context) (float64, error) {
	return s.budgetRepo.Get(ctx)
}

// SetBudget stores a new budget.
func (s *BudgetServiceImpl) SetBudget(ctx context.Context, amount float64) error {
	if err := s.budgetRepo.Set(ctx, amount); err != nil {
		return fmt.Errorf("failed to set budget: %w", err)
	}
	return nil
}

// Summary reads the budget, then walks every product once.
func (s *BudgetServiceImpl) Summary(ctx context.Context) (*primary.BudgetSummary, error) {
	amount, err := s.budgetRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	var tally corebudget.Tally
	for record, err := range s.productRepo.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to read products: %w", err)
		}
		tally.Add(record.Subtotal, record.Purchased)
	}

	summary := corebudget.Summarize(amount, &tally)
	return &primary.BudgetSummary{
		Budget:    summary.Budget,
		Spent:     summary.Spent,
		Remaining: summary.Remaining,
		Items:     summary.Items,
		Purchased: summary.Purchased,
		Overspent: summary.Overspent(),
	}, nil
}

// Ensure BudgetServiceImpl implements the interface.
var _ primary.BudgetService = (*BudgetServiceImpl)(nil)
