package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
// Order line items reference products by identity only; Exists is the
// resolution check consumed by the order deletion rule.
type ProductRepository interface {
	// Add persists a new catalog product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns ObjectNotFoundError if no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Exists reports whether a product with the given identifier is still
	// present in the catalog. A false result marks order line items holding
	// this reference as unresolvable.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a product from the catalog. Orders referencing it are
	// left untouched; their line items become unresolvable references.
	Delete(ctx context.Context, id kernel.UUID) error
}
