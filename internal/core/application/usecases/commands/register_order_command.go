package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterOrderCommandIsNotConstructed = errors.New(
	"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
)

// RegisterOrderCommand asks to place an order for the acting consumer.
// The submission is checked by the handler, not by the constructor, so that
// registration reports every inconsistency in one validation error.
//
// Example:
//
//	cmd, err := NewRegisterOrderCommand(consumerID, services.OrderSubmission{
//	    RestaurantID: 3,
//	    Subtotal:     2000,
//	    DeliveryFee:  500,
//	    Total:        2500,
//	    Products:     []services.SubmittedProduct{{ProductID: 1, Quantity: 2, Price: 1000, Subtotal: 2000}},
//	})
type RegisterOrderCommand struct {
	consumerID int64
	submission services.OrderSubmission

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand requires a resolved consumer.
func NewRegisterOrderCommand(consumerID int64, submission services.OrderSubmission) (RegisterOrderCommand, error) {
	if consumerID <= 0 {
		return RegisterOrderCommand{}, errs.NewValueIsRequiredError("consumer id")
	}

	products := append([]services.SubmittedProduct(nil), submission.Products...)
	submission.Products = products

	return RegisterOrderCommand{
		consumerID: consumerID,
		submission: submission,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

func (c RegisterOrderCommand) ConsumerID() int64 {
	return c.consumerID
}

func (c RegisterOrderCommand) Submission() services.OrderSubmission {
	return c.submission
}
