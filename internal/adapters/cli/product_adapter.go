package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	corebudget "github.com/example/lister/internal/core/budget"
	"github.com/example/lister/internal/core/form"
	"github.com/example/lister/internal/ports/primary"
)

// ProductAdapter translates CLI operations to ProductService and
// BudgetService calls. Every change redraws the product table followed by
// the remaining budget.
type ProductAdapter struct {
	products primary.ProductService
	budgets  primary.BudgetService
	out      io.Writer
	format   string
}

// NewProductAdapter creates a new ProductAdapter.
func NewProductAdapter(products primary.ProductService, budgets primary.BudgetService, out io.Writer, format string) *ProductAdapter {
	return &ProductAdapter{
		products: products,
		budgets:  budgets,
		out:      out,
		format:   format,
	}
}

type productsView struct {
	Changed  *primary.Product       `json:"changed,omitempty"`
	Products []*primary.Product     `json:"products"`
	Budget   *primary.BudgetSummary `json:"budget"`
}

// Add submits the form in Insert mode.
func (a *ProductAdapter) Add(ctx context.Context, fields primary.ProductFields) error {
	product, err := a.products.SubmitProduct(ctx, form.Create[primary.ProductFields]{Values: fields})
	if err != nil {
		return err
	}

	return a.redraw(ctx, fmt.Sprintf("✓ Created product %d: %s", product.ID, product.Name), product)
}

// Update runs the edit flow against the stored product.
func (a *ProductAdapter) Update(ctx context.Context, id int64, edit func(*primary.ProductFields)) error {
	current, err := a.products.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	var state form.State[primary.ProductFields]
	state.Load(current.ID, current.Fields())
	edit(&state.Values)

	product, err := a.products.SubmitProduct(ctx, state.Submit())
	if err != nil {
		return err
	}

	return a.redraw(ctx, fmt.Sprintf("✓ Product %d updated", product.ID), product)
}

// SetPurchased toggles the purchased flag.
func (a *ProductAdapter) SetPurchased(ctx context.Context, id int64, purchased bool) error {
	if err := a.products.SetPurchased(ctx, id, purchased); err != nil {
		return err
	}

	message := fmt.Sprintf("✓ Product %d marked purchased", id)
	if !purchased {
		message = fmt.Sprintf("✓ Product %d marked not purchased", id)
	}
	return a.redraw(ctx, message, nil)
}

// Show displays a single product.
func (a *ProductAdapter) Show(ctx context.Context, id int64) error {
	product, err := a.products.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	if a.format == FormatJSON {
		return writeJSON(a.out, "", product)
	}

	fmt.Fprintf(a.out, "\nProduct:    %d\n", product.ID)
	fmt.Fprintf(a.out, "Name:       %s\n", product.Name)
	fmt.Fprintf(a.out, "Brand:      %s\n", product.Brand)
	fmt.Fprintf(a.out, "Quantity:   %s\n", formatQuantity(product.Quantity))
	fmt.Fprintf(a.out, "Unit price: %s\n", corebudget.Format(product.UnitPrice))
	fmt.Fprintf(a.out, "Subtotal:   %s\n", formatSubtotal(product))
	fmt.Fprintf(a.out, "Purchased:  %t\n", product.Purchased)
	fmt.Fprintln(a.out)
	return nil
}

// Delete removes a product. Deleting an unknown id still succeeds.
func (a *ProductAdapter) Delete(ctx context.Context, id int64) error {
	if err := a.products.DeleteProduct(ctx, id); err != nil {
		return err
	}

	return a.redraw(ctx, fmt.Sprintf("✓ Deleted product %d", id), nil)
}

// List draws the product table and budget.
func (a *ProductAdapter) List(ctx context.Context) error {
	return a.redraw(ctx, "", nil)
}

// SetBudget parses raw budget input (empty means 0) and stores it.
func (a *ProductAdapter) SetBudget(ctx context.Context, raw string) error {
	amount := corebudget.Parse(raw)
	if err := a.budgets.SetBudget(ctx, amount); err != nil {
		return err
	}

	return a.redraw(ctx, fmt.Sprintf("✓ Budget set to %s", corebudget.Format(amount)), nil)
}

// Budget prints only the budget summary.
func (a *ProductAdapter) Budget(ctx context.Context) error {
	summary, err := a.budgets.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute budget: %w", err)
	}

	if a.format == FormatJSON {
		return writeJSON(a.out, "", summary)
	}

	a.renderBudget(summary)
	return nil
}

func (a *ProductAdapter) redraw(ctx context.Context, message string, changed *primary.Product) error {
	products, err := a.products.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	summary, err := a.budgets.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute budget: %w", err)
	}

	if a.format == FormatJSON {
		return writeJSON(a.out, message, productsView{Changed: changed, Products: products, Budget: summary})
	}

	if message != "" {
		fmt.Fprintln(a.out, message)
	}

	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found")
	} else {
		a.renderProducts(products)
	}

	a.renderBudget(summary)
	return nil
}

func (a *ProductAdapter) renderProducts(products []*primary.Product) {
	fmt.Fprintf(a.out, "\n%-6s %-15s %-12s %8s %10s %10s  %s\n",
		"ID", "NAME", "BRAND", "QTY", "UNIT", "SUBTOTAL", "PURCHASED")
	fmt.Fprintln(a.out, rule)

	stale := false
	for _, p := range products {
		stale = stale || p.SubtotalStale
		fmt.Fprintf(a.out, "%-6d %-15s %-12s %8s %10s %10s  %s\n",
			p.ID, p.Name, p.Brand,
			formatQuantity(p.Quantity),
			corebudget.Format(p.UnitPrice),
			formatSubtotal(p),
			purchasedMark(p.Purchased),
		)
	}

	if stale {
		fmt.Fprintln(a.out, "* subtotal fixed at creation; quantity or price changed since")
	}
}

func (a *ProductAdapter) renderBudget(s *primary.BudgetSummary) {
	remaining := corebudget.Format(s.Remaining)
	if s.Overspent {
		remaining = color.New(color.FgRed).Sprint(remaining)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Budget:    %s\n", corebudget.Format(s.Budget))
	fmt.Fprintf(a.out, "Spent:     %s (%d of %d purchased)\n", corebudget.Format(s.Spent), s.Purchased, s.Items)
	fmt.Fprintf(a.out, "Remaining: %s\n", remaining)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func formatSubtotal(p *primary.Product) string {
	out := corebudget.Format(p.Subtotal)
	if p.SubtotalStale {
		out += "*"
	}
	return out
}

func purchasedMark(purchased bool) string {
	if purchased {
		return color.New(color.FgGreen).Sprint("[x]")
	}
	return "[ ]"
}
