package queries

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists a consumer's orders filtered by the delivered flag.
type ListOrdersQuery struct {
	consumerID int64
	delivered  bool

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(consumerID int64, delivered bool) (ListOrdersQuery, error) {
	if consumerID <= 0 {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("consumer id")
	}

	return ListOrdersQuery{
		consumerID: consumerID,
		delivered:  delivered,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) ConsumerID() int64 {
	return q.consumerID
}

func (q ListOrdersQuery) Delivered() bool {
	return q.delivered
}
