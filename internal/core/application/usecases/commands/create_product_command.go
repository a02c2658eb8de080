package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents an admin's request to add a product to the
// catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     int64
	inStock   bool
	image     string
	category  string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a product creation command. The name must
// be non-empty and the price non-negative.
func NewCreateProductCommand(productID kernel.UUID, name string, price int64, inStock bool, image, category string) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		inStock:  inStock,
		image:    image,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier assigned to the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the unit price in minor currency units.
func (c CreateProductCommand) Price() int64 {
	return c.price
}

// InStock reports the initial availability flag.
func (c CreateProductCommand) InStock() bool {
	return c.inStock
}

// Image returns the optional image reference.
func (c CreateProductCommand) Image() string {
	return c.image
}

// Category returns the optional category label.
func (c CreateProductCommand) Category() string {
	return c.category
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d is negative", price),
		)
	}

	c.price = price
	return nil
}
