package commands

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
)

// ChangeDeliveryStatusCommand sets the delivered flag of an order owned by the consumer.
type ChangeDeliveryStatusCommand struct {
	orderID    int64
	consumerID int64
	delivered  bool

	guard guard.ConstructorGuard
}

func NewChangeDeliveryStatusCommand(orderID, consumerID int64, delivered bool) (ChangeDeliveryStatusCommand, error) {
	var violations []error
	if orderID <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("order id"))
	}
	if consumerID <= 0 {
		violations = append(violations, errs.NewValueIsRequiredError("consumer id"))
	}
	if err := errors.Join(violations...); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}

	return ChangeDeliveryStatusCommand{
		orderID:    orderID,
		consumerID: consumerID,
		delivered:  delivered,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewMarkDeliveredCommand is NewChangeDeliveryStatusCommand with delivered set.
func NewMarkDeliveredCommand(orderID, consumerID int64) (ChangeDeliveryStatusCommand, error) {
	return NewChangeDeliveryStatusCommand(orderID, consumerID, true)
}

// NewMarkUndeliveredCommand is NewChangeDeliveryStatusCommand with delivered cleared.
func NewMarkUndeliveredCommand(orderID, consumerID int64) (ChangeDeliveryStatusCommand, error) {
	return NewChangeDeliveryStatusCommand(orderID, consumerID, false)
}

func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

func (c ChangeDeliveryStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c ChangeDeliveryStatusCommand) ConsumerID() int64 {
	return c.consumerID
}

func (c ChangeDeliveryStatusCommand) Delivered() bool {
	return c.delivered
}
