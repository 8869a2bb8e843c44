package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/example/lister/internal/core/form"
	coreproduct "github.com/example/lister/internal/core/product"
	"github.com/example/lister/internal/ports/primary"
	"github.com/example/lister/internal/ports/secondary"
)

// ProductServiceImpl implements the ProductService interface.
type ProductServiceImpl struct {
	productRepo secondary.ProductRepository
	logWriter   secondary.LogWriter
}

// NewProductService creates a new ProductService with injected dependencies.
// logWriter may be nil.
func NewProductService(productRepo secondary.ProductRepository, logWriter secondary.LogWriter) *ProductServiceImpl {
	return &ProductServiceImpl{
		productRepo: productRepo,
		logWriter:   logWriter,
	}
}

// CreateProduct inserts a new product. The subtotal is fixed here.
func (s *ProductServiceImpl) CreateProduct(ctx context.Context, req primary.CreateProductRequest) (*primary.CreateProductResponse, error) {
	f := req.Fields
	id, err := s.productRepo.Create(ctx, &secondary.ProductRecord{
		Name:      f.Name,
		Brand:     f.Brand,
		Quantity:  f.Quantity,
		UnitPrice: f.UnitPrice,
		Subtotal:  coreproduct.Subtotal(f.Quantity, f.UnitPrice),
		Purchased: f.Purchased,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "product", id)
	}

	created, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created product: %w", err)
	}

	return &primary.CreateProductResponse{
		ProductID: id,
		Product:   recordToProduct(created),
	}, nil
}

// UpdateProduct replaces the editable fields of a product.
func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, req primary.UpdateProductRequest) error {
	f := req.Fields
	err := s.productRepo.Update(ctx, &secondary.ProductRecord{
		ID:        req.ProductID,
		Name:      f.Name,
		Brand:     f.Brand,
		Quantity:  f.Quantity,
		UnitPrice: f.UnitPrice,
		Purchased: f.Purchased,
	})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogUpdate(ctx, "product", req.ProductID, "", "", "")
	}
	return nil
}

// SubmitProduct applies a form submission and returns the stored product.
func (s *ProductServiceImpl) SubmitProduct(ctx context.Context, sub form.Submission[primary.ProductFields]) (*primary.Product, error) {
	switch v := sub.(type) {
	case form.Create[primary.ProductFields]:
		resp, err := s.CreateProduct(ctx, primary.CreateProductRequest{Fields: v.Values})
		if err != nil {
			return nil, err
		}
		return resp.Product, nil
	case form.Update[primary.ProductFields]:
		if err := s.UpdateProduct(ctx, primary.UpdateProductRequest{ProductID: v.ID, Fields: v.Values}); err != nil {
			return nil, err
		}
		return s.GetProduct(ctx, v.ID)
	default:
		return nil, fmt.Errorf("unsupported submission %T", sub)
	}
}

// SetPurchased marks a product purchased or not in one write.
func (s *ProductServiceImpl) SetPurchased(ctx context.Context, id int64, purchased bool) error {
	if err := s.productRepo.SetPurchased(ctx, id, purchased); err != nil {
		return fmt.Errorf("failed to set purchased: %w", err)
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogUpdate(ctx, "product", id, "purchased", "", strconv.FormatBool(purchased))
	}
	return nil
}

// GetProduct retrieves a product by id.
func (s *ProductServiceImpl) GetProduct(ctx context.Context, id int64) (*primary.Product, error) {
	record, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToProduct(record), nil
}

// DeleteProduct removes a product.
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogDelete(ctx, "product", id)
	}
	return nil
}

// ListProducts retrieves every product in id order.
func (s *ProductServiceImpl) ListProducts(ctx context.Context) ([]*primary.Product, error) {
	products := []*primary.Product{}
	for record, err := range s.productRepo.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
		products = append(products, recordToProduct(record))
	}
	return products, nil
}

func recordToProduct(r *secondary.ProductRecord) *primary.Product {
	return &primary.Product{
		ID:            r.ID,
		Name:          r.Name,
		Brand:         r.Brand,
		Quantity:      r.Quantity,
		UnitPrice:     r.UnitPrice,
		Subtotal:      r.Subtotal,
		Purchased:     r.Purchased,
		SubtotalStale: coreproduct.SubtotalStale(r.Quantity, r.UnitPrice, r.Subtotal),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Ensure ProductServiceImpl implements the interface.
var _ primary.ProductService = (*ProductServiceImpl)(nil)
