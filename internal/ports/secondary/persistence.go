// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
	"iter"
)

// ErrNotFound is returned (wrapped) when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// PersonRepository defines the secondary port for the people record store.
type PersonRepository interface {
	// Create persists a new person and returns the id assigned by the store.
	// Any ID set on the record is ignored.
	Create(ctx context.Context, person *PersonRecord) (int64, error)

	// GetByID retrieves a person by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*PersonRecord, error)

	// Update replaces every field of the person stored at person.ID.
	// Returns ErrNotFound if no such id exists.
	Update(ctx context.Context, person *PersonRecord) error

	// Delete removes a person. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error

	// All returns a forward-only traversal over every person in id order.
	// Each iteration advances the underlying cursor by one row.
	All(ctx context.Context) iter.Seq2[*PersonRecord, error]

	// List drains All into a slice.
	List(ctx context.Context) ([]*PersonRecord, error)
}

// PersonRecord represents a person as stored in persistence.
type PersonRecord struct {
	ID        int64
	Name      string
	Surname   string // column apellido
	City      string // column ciudad
	CreatedAt string
	UpdatedAt string
}

// ProductRepository defines the secondary port for the shopping list record store.
type ProductRepository interface {
	// Create persists a new product and returns the id assigned by the store.
	// Subtotal is stored as given; callers compute it.
	Create(ctx context.Context, product *ProductRecord) (int64, error)

	// GetByID retrieves a product by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*ProductRecord, error)

	// Update replaces name, brand, quantity, unit price and purchased at
	// product.ID. The stored subtotal is left untouched.
	// Returns ErrNotFound if no such id exists.
	Update(ctx context.Context, product *ProductRecord) error

	// SetPurchased flips the purchased flag in a single statement.
	// Returns ErrNotFound if no such id exists.
	SetPurchased(ctx context.Context, id int64, purchased bool) error

	// Delete removes a product. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error

	// All returns a forward-only traversal over every product in id order.
	All(ctx context.Context) iter.Seq2[*ProductRecord, error]

	// List drains All into a slice.
	List(ctx context.Context) ([]*ProductRecord, error)
}

// ProductRecord represents a product as stored in persistence.
type ProductRecord struct {
	ID        int64
	Name      string
	Brand     string
	Quantity  float64
	UnitPrice float64
	Subtotal  float64
	Purchased bool
	CreatedAt string
	UpdatedAt string
}

// BudgetRepository defines the key/value port holding the shopping budget.
type BudgetRepository interface {
	// Get returns the stored budget, or 0 if none was ever set.
	Get(ctx context.Context) (float64, error)

	// Set stores the budget, replacing any previous value.
	Set(ctx context.Context, amount float64) error
}
