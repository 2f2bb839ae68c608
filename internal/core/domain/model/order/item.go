package order

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line: a product reference, a quantity, the unit price at
// purchase time, and the derived line total. Items are immutable once the
// order is created; the order total is the sum of line totals by
// construction.
type Item struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
	lineTotal kernel.Money

	isConstructed bool
}

// NewItem creates an order line and computes its line total.
// Quantity must be positive and the unit price greater than zero.
func NewItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !unitPrice.IsPositive() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%s is not greater than 0", unitPrice.String()))
	}

	return Item{
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		lineTotal:     unitPrice.MulInt(quantity),
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit at purchase time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns quantity × unit price.
func (i Item) LineTotal() kernel.Money {
	return i.lineTotal
}
