package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var ErrFindInconsistentOrdersQueryIsNotConstructed = errors.New(
	"FindInconsistentOrdersQuery must be created via NewFindInconsistentOrdersQuery constructor",
)

// FindInconsistentOrdersQuery looks for orders whose stored totals do not
// reconcile with their line items. It takes no parameters.
type FindInconsistentOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewFindInconsistentOrdersQuery() FindInconsistentOrdersQuery {
	return FindInconsistentOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q FindInconsistentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFindInconsistentOrdersQueryIsNotConstructed)
}

type FindInconsistentOrdersQueryHandler struct {
	readModel ports.OrderReadModel
}

func NewFindInconsistentOrdersQueryHandler(readModel ports.OrderReadModel) FindInconsistentOrdersQueryHandler {
	return FindInconsistentOrdersQueryHandler{readModel: readModel}
}

// Handle returns an empty slice when every order reconciles.
func (h FindInconsistentOrdersQueryHandler) Handle(
	ctx context.Context,
	query FindInconsistentOrdersQuery,
) ([]ports.TotalsMismatch, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	mismatches, err := h.readModel.FindTotalsMismatches(ctx)
	if err != nil {
		return nil, err
	}
	if mismatches == nil {
		mismatches = []ports.TotalsMismatch{}
	}
	return mismatches, nil
}
