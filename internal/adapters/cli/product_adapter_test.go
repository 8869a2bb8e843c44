package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lister/internal/ports/primary"
)

func newProductAdapter(format string, products ...*primary.Product) (*ProductAdapter, *fakeProductService, *fakeBudgetService, *bytes.Buffer) {
	ps := &fakeProductService{products: products, nextID: int64(len(products))}
	bs := &fakeBudgetService{products: ps}
	var out bytes.Buffer
	return NewProductAdapter(ps, bs, &out, format), ps, bs, &out
}

func TestProductAdapter_List(t *testing.T) {
	adapter, _, budgets, out := newProductAdapter(FormatText,
		&primary.Product{ID: 1, Name: "Leche", Brand: "X", Quantity: 2, UnitPrice: 3.5, Subtotal: 7, Purchased: true},
		&primary.Product{ID: 2, Name: "Pan", Brand: "Bimbo", Quantity: 1, UnitPrice: 1.2, Subtotal: 1.2},
		&primary.Product{ID: 3, Name: "Arroz", Brand: "Costeño", Quantity: 3, UnitPrice: 2, Subtotal: 4, SubtotalStale: true},
	)
	budgets.amount = 100

	require.NoError(t, adapter.List(context.Background()))

	newGoldie(t).Assert(t, "product_list", out.Bytes())
}

func TestProductAdapter_PurchaseScenario(t *testing.T) {
	adapter, products, _, out := newProductAdapter(FormatText)
	ctx := context.Background()

	require.NoError(t, adapter.Add(ctx, primary.ProductFields{Name: "Leche", Brand: "X", Quantity: 2, UnitPrice: 3.5}))
	require.NoError(t, adapter.SetBudget(ctx, "100"))
	out.Reset()

	require.NoError(t, adapter.SetPurchased(ctx, 1, true))

	assert.Equal(t, 1, products.purchasedCalls)
	newGoldie(t).Assert(t, "product_purchase", out.Bytes())
}

func TestProductAdapter_EmptyBudgetOverspends(t *testing.T) {
	adapter, _, budgets, out := newProductAdapter(FormatText,
		&primary.Product{ID: 1, Name: "Leche", Brand: "X", Quantity: 2, UnitPrice: 3.5, Subtotal: 7, Purchased: true},
	)
	budgets.amount = 50
	ctx := context.Background()

	require.NoError(t, adapter.SetBudget(ctx, ""))

	assert.Equal(t, float64(0), budgets.amount)
	assert.Contains(t, out.String(), "✓ Budget set to 0.00")
	assert.Contains(t, out.String(), "Remaining: -7.00")
}

func TestProductAdapter_UpdateKeepsSubtotal(t *testing.T) {
	adapter, products, _, out := newProductAdapter(FormatText,
		&primary.Product{ID: 1, Name: "Leche", Brand: "X", Quantity: 2, UnitPrice: 3.5, Subtotal: 7},
	)

	err := adapter.Update(context.Background(), 1, func(f *primary.ProductFields) {
		f.Quantity = 4
	})
	require.NoError(t, err)

	assert.Equal(t, 7.0, products.products[0].Subtotal)
	assert.Contains(t, out.String(), "7.00*")
	assert.Contains(t, out.String(), "* subtotal fixed at creation")
}

func TestProductAdapter_EmptyList(t *testing.T) {
	adapter, _, _, out := newProductAdapter(FormatText)

	require.NoError(t, adapter.List(context.Background()))

	assert.Equal(t, "No products found\n\nBudget:    0.00\nSpent:     0.00 (0 of 0 purchased)\nRemaining: 0.00\n", out.String())
}

func TestProductAdapter_BudgetJSON(t *testing.T) {
	adapter, _, budgets, out := newProductAdapter(FormatJSON,
		&primary.Product{ID: 1, Name: "Leche", Quantity: 2, UnitPrice: 3.5, Subtotal: 7, Purchased: true},
	)
	budgets.amount = 100

	require.NoError(t, adapter.Budget(context.Background()))

	var got struct {
		Data primary.BudgetSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, primary.BudgetSummary{Budget: 100, Spent: 7, Remaining: 93, Items: 1, Purchased: 1}, got.Data)
}

func TestProductAdapter_DeleteUnknown(t *testing.T) {
	adapter, _, _, out := newProductAdapter(FormatText)

	require.NoError(t, adapter.Delete(context.Background(), 9))
	assert.Contains(t, out.String(), "✓ Deleted product 9")
}
