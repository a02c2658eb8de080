// Package product contains the catalog product aggregate.
//
// Products are referenced by order line items by identity only. Removing a
// product from the catalog does not touch existing orders; their line items
// simply stop resolving, which the order deletion rules treat as a normal,
// checkable condition.
package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents an item in the storefront catalog.
type Product struct {
	id       kernel.UUID
	name     string
	price    int64
	inStock  bool
	image    string
	category string

	isConstructed bool
}

// NewProduct creates a validated catalog product. The name must be non-empty
// and the price non-negative; image and category are optional.
func NewProduct(id kernel.UUID, name string, price int64, inStock bool, image, category string) (*Product, error) {
	product := &Product{
		inStock:       inStock,
		image:         image,
		category:      category,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, name string, price int64, inStock bool, image, category string) (*Product, error) {
	return NewProduct(id, name, price, inStock, image, category)
}

// Validate ensures the Product was created through a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price in minor currency units.
func (p *Product) Price() int64 {
	return p.price
}

// InStock reports whether the product is currently available.
func (p *Product) InStock() bool {
	return p.inStock
}

// Image returns the product's image reference, or an empty string.
func (p *Product) Image() string {
	return p.image
}

// Category returns the product's category label, or an empty string.
func (p *Product) Category() string {
	return p.category
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d is negative", price),
		)
	}
	p.price = price
	return nil
}
