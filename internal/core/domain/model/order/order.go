package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyPersisted is returned when an identifier is assigned twice.
	ErrOrderAlreadyPersisted = errors.New("order already has an identifier")
)

// Order is the aggregate root of a placed order. It owns its line items and
// records domain events for the unit of work to publish after commit.
//
// Order follows these invariants:
//   - consumer and restaurant identifiers are positive
//   - at least one line item
//   - subtotal equals the sum of line item subtotals
//   - total equals subtotal plus delivery fee
//
// The identifier is zero until the store assigns one through MarkPersisted.
type Order struct {
	id           int64
	consumerID   int64
	restaurantID int64

	subtotal    kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money

	// outForDelivery is set by restaurant-side tooling and only read here.
	outForDelivery bool
	delivered      bool

	items  []LineItem
	events []Event

	isConstructed bool
}

// NewOrder creates an undelivered order that has not been persisted yet.
//
// Example:
//
//	item, _ := order.NewLineItem(1, 2, 1000, 2000)
//	o, err := order.NewOrder(consumerID, restaurantID, 2000, 500, 2500, []order.LineItem{item})
//	if err != nil {
//	    // totals do not reconcile or identifiers are missing
//	}
func NewOrder(
	consumerID, restaurantID int64,
	subtotal, deliveryFee, total kernel.Money,
	items []LineItem,
) (*Order, error) {
	o := &Order{
		consumerID:    consumerID,
		restaurantID:  restaurantID,
		subtotal:      subtotal,
		deliveryFee:   deliveryFee,
		total:         total,
		items:         append([]LineItem(nil), items...),
		isConstructed: true,
	}

	var violations []error
	if consumerID <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("consumer id"))
	}
	if restaurantID <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("restaurant id"))
	}
	if len(items) == 0 {
		violations = append(violations, errs.NewValueIsRequiredError("products"))
	}
	subtotals := make([]kernel.Money, 0, len(items))
	for _, item := range items {
		subtotals = append(subtotals, item.Subtotal())
	}
	violations = append(violations, ReconcileTotals(subtotal, deliveryFee, total, subtotals))

	if err := errors.Join(violations...); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. Items may be empty when the
// caller only loaded the header.
func RestoreOrder(
	id, consumerID, restaurantID int64,
	subtotal, deliveryFee, total kernel.Money,
	outForDelivery, delivered bool,
	items []LineItem,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if consumerID <= 0 || restaurantID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order %d has consumer %d and restaurant %d", id, consumerID, restaurantID))
	}

	return &Order{
		id:             id,
		consumerID:     consumerID,
		restaurantID:   restaurantID,
		subtotal:       subtotal,
		deliveryFee:    deliveryFee,
		total:          total,
		outForDelivery: outForDelivery,
		delivered:      delivered,
		items:          append([]LineItem(nil), items...),
		isConstructed:  true,
	}, nil
}

// ReconcileTotals checks the money invariants of an order: no negative amounts,
// subtotal equal to the sum of line subtotals and total equal to subtotal plus fee.
func ReconcileTotals(subtotal, deliveryFee, total kernel.Money, lineSubtotals []kernel.Money) error {
	var violations []error
	amounts := []struct {
		name   string
		amount kernel.Money
	}{
		{"subtotal", subtotal},
		{"delivery fee", deliveryFee},
		{"total", total},
	}
	for _, a := range amounts {
		if err := a.amount.Validate(); err != nil {
			violations = append(violations, errs.NewValueIsInvalidErrorWithCause(a.name, err))
		}
	}

	sum, err := kernel.Sum(lineSubtotals...)
	switch {
	case err != nil:
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause("subtotal", err))
	case sum != subtotal:
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%s does not match products sum %s", subtotal, sum)))
	}

	expected, err := subtotal.Add(deliveryFee)
	switch {
	case err != nil:
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause("total", err))
	case expected != total:
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s does not match subtotal plus delivery fee %s", total, expected)))
	}

	return errors.Join(violations...)
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64                 { return o.id }
func (o *Order) ConsumerID() int64         { return o.consumerID }
func (o *Order) RestaurantID() int64       { return o.restaurantID }
func (o *Order) Subtotal() kernel.Money    { return o.subtotal }
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }
func (o *Order) Total() kernel.Money       { return o.total }
func (o *Order) OutForDelivery() bool      { return o.outForDelivery }
func (o *Order) Delivered() bool           { return o.delivered }

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// IsOwnedBy reports whether the order belongs to the consumer.
func (o *Order) IsOwnedBy(consumerID int64) bool {
	return o.consumerID == consumerID
}

// MarkPersisted stores the identifier assigned by the store and raises Registered.
func (o *Order) MarkPersisted(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	if o.id != 0 {
		return ErrOrderAlreadyPersisted
	}

	o.id = id
	o.events = append(o.events, Registered{
		ID:           o.id,
		ConsumerID:   o.consumerID,
		RestaurantID: o.restaurantID,
		Total:        o.total,
		ItemCount:    len(o.items),
	})
	return nil
}

// SetDelivered sets the delivered flag. Setting the current value is allowed.
func (o *Order) SetDelivered(delivered bool) {
	o.delivered = delivered
	o.events = append(o.events, DeliveryStatusChanged{
		ID:         o.id,
		ConsumerID: o.consumerID,
		Delivered:  delivered,
	})
}

// DomainEvents returns events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	return append([]Event(nil), o.events...)
}

// ClearDomainEvents drops recorded events once they have been dispatched.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}
