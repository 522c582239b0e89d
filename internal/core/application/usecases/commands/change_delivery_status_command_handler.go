package commands

import "context"

// ChangeDeliveryStatusCommandHandler flips the delivered flag. Ownership is
// enforced by loading the order scoped to the consumer: another consumer's
// order is reported as not found.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeDeliveryStatusCommandHandler(uowFactory OrderUoWFactory) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, sets the flag and writes it back. Setting the current
// value succeeds.
func (h *ChangeDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForConsumer(ctx, cmd.OrderID(), cmd.ConsumerID())
	if err != nil {
		return err
	}

	aggregate.SetDelivered(cmd.Delivered())

	if err = orderRepo.UpdateDeliveryStatus(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
