package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// LineItem is a (product reference, quantity) pair within an order.
//
// The product reference is weak: it holds the product's identity, not the
// product itself. If the product is later removed from the catalog the
// reference becomes unresolvable, which is a normal, queryable condition
// consumed by the deletion rule, not an error.
type LineItem struct {
	productID kernel.UUID
	quantity  int

	isConstructed bool
}

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory function.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// NewLineItem creates a validated line item. The product ID must be valid
// and the quantity positive.
func NewLineItem(productID kernel.UUID, quantity int) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}

	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return LineItem{
		productID:     productID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ProductID returns the identity of the referenced catalog product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}
