package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"time"

	"github.com/example/lister/internal/ports/secondary"
)

const productColumns = "id, name, brand, quantity, unit_price, subtotal, purchased, created_at, updated_at"

// ProductRepository implements secondary.ProductRepository with SQLite.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new SQLite product repository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create persists a new product and returns the assigned id.
func (r *ProductRepository) Create(ctx context.Context, product *secondary.ProductRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO productos (name, brand, quantity, unit_price, subtotal, purchased) VALUES (?, ?, ?, ?, ?, ?)",
		product.Name, product.Brand, product.Quantity, product.UnitPrice, product.Subtotal, product.Purchased,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read assigned product id: %w", err)
	}

	return id, nil
}

// GetByID retrieves a product by its id.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*secondary.ProductRecord, error) {
	record, err := scanProduct(r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM productos WHERE id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return record, nil
}

// Update replaces the editable fields of the product at product.ID.
// subtotal is not part of the statement.
func (r *ProductRepository) Update(ctx context.Context, product *secondary.ProductRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE productos
		 SET name = ?, brand = ?, quantity = ?, unit_price = ?, purchased = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		product.Name, product.Brand, product.Quantity, product.UnitPrice, product.Purchased, product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("product %d: %w", product.ID, secondary.ErrNotFound)
	}

	return nil
}

// SetPurchased sets the purchased flag without a prior read.
func (r *ProductRepository) SetPurchased(ctx context.Context, id int64, purchased bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE productos SET purchased = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		purchased, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set purchased: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// Delete removes a product. Absent ids are ignored.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM productos WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// All walks the productos table in id order.
// The loop body must not issue other statements against the same database.
func (r *ProductRepository) All(ctx context.Context) iter.Seq2[*secondary.ProductRecord, error] {
	return func(yield func(*secondary.ProductRecord, error) bool) {
		rows, err := r.db.QueryContext(ctx,
			"SELECT "+productColumns+" FROM productos ORDER BY id ASC",
		)
		if err != nil {
			yield(nil, fmt.Errorf("failed to list products: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			record, err := scanProduct(rows)
			if err != nil {
				yield(nil, fmt.Errorf("failed to scan product: %w", err))
				return
			}
			if !yield(record, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("failed to iterate products: %w", err))
		}
	}
}

// List retrieves all products ordered by id.
func (r *ProductRepository) List(ctx context.Context) ([]*secondary.ProductRecord, error) {
	var products []*secondary.ProductRecord
	for record, err := range r.All(ctx) {
		if err != nil {
			return nil, err
		}
		products = append(products, record)
	}
	return products, nil
}

func scanProduct(row rowScanner) (*secondary.ProductRecord, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.ProductRecord{}
	err := row.Scan(
		&record.ID, &record.Name, &record.Brand,
		&record.Quantity, &record.UnitPrice, &record.Subtotal, &record.Purchased,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Ensure ProductRepository implements the interface.
var _ secondary.ProductRepository = (*ProductRepository)(nil)
