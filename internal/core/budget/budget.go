// Package budget contains the pure arithmetic behind the remaining-budget
// display of the shopping list.
package budget

import (
	"fmt"

	"github.com/example/lister/internal/core/form"
)

// Tally accumulates purchased subtotals one record at a time, so callers can
// feed it straight from a cursor without buffering the record set.
type Tally struct {
	spent     float64
	items     int
	purchased int
}

// Add records one product.
func (t *Tally) Add(subtotal float64, purchased bool) {
	t.items++
	if !purchased {
		return
	}
	t.purchased++
	t.spent += subtotal
}

// Spent returns the sum of subtotals of purchased products.
func (t *Tally) Spent() float64 { return t.spent }

// Items returns how many products were seen.
func (t *Tally) Items() int { return t.items }

// Purchased returns how many of them were purchased.
func (t *Tally) Purchased() int { return t.purchased }

// Summary is the computed budget view.
type Summary struct {
	Budget    float64
	Spent     float64
	Remaining float64
	Items     int
	Purchased int
}

// Summarize combines a budget with a finished tally.
func Summarize(amount float64, t *Tally) Summary {
	return Summary{
		Budget:    amount,
		Spent:     t.Spent(),
		Remaining: Remaining(amount, t.Spent()),
		Items:     t.Items(),
		Purchased: t.Purchased(),
	}
}

// Remaining is budget minus spent. Negative results are kept as-is.
func Remaining(amount, spent float64) float64 {
	return amount - spent
}

// Overspent reports whether the remainder is below zero.
func (s Summary) Overspent() bool {
	return s.Remaining < 0 && Format(s.Remaining) != "0.00"
}

// Format renders an amount with two decimals, e.g. 93.00 or -7.00.
func Format(amount float64) string {
	out := fmt.Sprintf("%.2f", amount)
	if out == "-0.00" {
		return "0.00"
	}
	return out
}

// Parse reads user budget input. Empty or malformed input is 0.
func Parse(raw string) float64 {
	return form.Number(raw)
}
