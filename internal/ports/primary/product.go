package primary

import (
	"context"

	"github.com/example/lister/internal/core/form"
)

// ProductService defines the primary port for the shopping list.
type ProductService interface {
	// CreateProduct inserts a new product and computes its subtotal.
	CreateProduct(ctx context.Context, req CreateProductRequest) (*CreateProductResponse, error)

	// UpdateProduct replaces the editable fields of a product.
	// The subtotal computed at creation is kept.
	UpdateProduct(ctx context.Context, req UpdateProductRequest) error

	// SubmitProduct applies a form submission, creating or updating.
	SubmitProduct(ctx context.Context, sub form.Submission[ProductFields]) (*Product, error)

	// SetPurchased marks a product purchased or not.
	SetPurchased(ctx context.Context, id int64, purchased bool) error

	// GetProduct retrieves a product by id.
	GetProduct(ctx context.Context, id int64) (*Product, error)

	// DeleteProduct removes a product. Unknown ids are not an error.
	DeleteProduct(ctx context.Context, id int64) error

	// ListProducts retrieves every product in id order.
	ListProducts(ctx context.Context) ([]*Product, error)
}

// ProductFields are the user-editable fields of a product.
type ProductFields struct {
	Name      string
	Brand     string
	Quantity  float64
	UnitPrice float64
	Purchased bool
}

// CreateProductRequest contains parameters for creating a product.
type CreateProductRequest struct {
	Fields ProductFields
}

// CreateProductResponse contains the result of creating a product.
type CreateProductResponse struct {
	ProductID int64
	Product   *Product
}

// UpdateProductRequest contains parameters for replacing a product.
type UpdateProductRequest struct {
	ProductID int64
	Fields    ProductFields
}

// Product represents a product at the port boundary.
type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
	Purchased bool    `json:"purchased"`
	// SubtotalStale is set when quantity or unit price were edited after
	// the subtotal was computed.
	SubtotalStale bool   `json:"subtotalStale,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// Fields returns the editable part of the product, for pre-filling a form.
func (p *Product) Fields() ProductFields {
	return ProductFields{
		Name:      p.Name,
		Brand:     p.Brand,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Purchased: p.Purchased,
	}
}
