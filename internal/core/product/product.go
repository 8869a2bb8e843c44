// Package product holds the shopping-list rules that do not touch storage.
package product

import "math"

// staleTolerance absorbs float noise when comparing stored and derived subtotals.
const staleTolerance = 1e-9

// Subtotal is quantity × unit price, computed once when a product is created.
func Subtotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// SubtotalStale reports whether a stored subtotal no longer matches the
// product's current quantity and unit price. Updates never re-derive the
// subtotal, so an edited product can drift.
func SubtotalStale(quantity, unitPrice, stored float64) bool {
	return math.Abs(Subtotal(quantity, unitPrice)-stored) > staleTolerance
}
