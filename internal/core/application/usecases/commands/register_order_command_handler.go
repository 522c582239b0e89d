package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// RegisterOrderCommandHandler validates a submission and writes the order header
// together with its line items in a single transaction.
//
// Steps, each aborting the rest on failure:
//  1. submission validation (no store access)
//  2. consumer address must exist
//  3. every product must exist, belong to the ordered restaurant and still be
//     active (re-read under a shared lock)
//  4. restaurant must exist
//  5. header and line items are inserted, then the transaction commits
type RegisterOrderCommandHandler struct {
	uowFactory RegisterOrderUoWFactory
	validator  services.OrderValidator
}

func NewRegisterOrderCommandHandler(uowFactory RegisterOrderUoWFactory) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewOrderValidator(),
	}
}

// Handle processes the registration. Any error after Begin rolls back everything
// written so far.
func (h *RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	submission := cmd.Submission()
	if err := h.validator.Validate(submission); err != nil {
		return err
	}

	items, err := submission.LineItems()
	if err != nil {
		return err
	}
	aggregate, err := order.NewOrder(
		cmd.ConsumerID(),
		submission.RestaurantID,
		submission.Subtotal,
		submission.DeliveryFee,
		submission.Total,
		items,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hasAddress, err := uow.ConsumerRepository().HasAddress(ctx, cmd.ConsumerID())
	if err != nil {
		return err
	}
	if !hasAddress {
		return errs.NewPreconditionFailedError("address required")
	}

	catalogRepo := uow.CatalogRepository()
	if err = ensureProductsOrderable(ctx, catalogRepo, submission.RestaurantID, submission.ProductIDs()); err != nil {
		return err
	}

	if _, err = catalogRepo.GetRestaurant(ctx, submission.RestaurantID); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type productLocker interface {
	LockProducts(ctx context.Context, ids []int64) ([]catalog.Product, error)
}

func ensureProductsOrderable(ctx context.Context, repo productLocker, restaurantID int64, ids []int64) error {
	products, err := repo.LockProducts(ctx, ids)
	if err != nil {
		return err
	}

	index := catalog.ProductsByID(products)
	for _, id := range ids {
		product, ok := index[id]
		if !ok {
			return errs.NewObjectNotFoundError("product", id)
		}
		if product.RestaurantID != restaurantID {
			return errs.NewConflictError(fmt.Sprintf("product %s", product.Name),
				fmt.Sprintf("is not sold by restaurant %d", restaurantID))
		}
		if !product.Active {
			return errs.NewConflictError(fmt.Sprintf("product %s", product.Name), "is no longer active")
		}
	}
	return nil
}
