package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	_, err := queries.NewListOrdersQuery(0, false)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	q, err := queries.NewListOrdersQuery(4, true)
	require.NoError(t, err)
	assert.Equal(t, int64(4), q.ConsumerID())
	assert.True(t, q.Delivered())
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("attaches items fetched in one batch", func(t *testing.T) {
		readModel := &MockOrderReadModel{}
		readModel.On("ListOrderSummaries", ctx, int64(4), false).Return([]ports.OrderView{
			{OrderID: 9, RestaurantName: "Pizzeria", Total: 3000},
			{OrderID: 5, RestaurantName: "Sushi", Total: 1200},
		}, nil).Once()
		readModel.On("ListOrderItems", ctx, []int64{9, 5}).Return(map[int64][]ports.OrderItemView{
			9: {
				{ProductName: "Margherita", Quantity: 2, Subtotal: 2000},
				{ProductName: "Cola", Quantity: 1, Subtotal: 500},
			},
		}, nil).Once()

		q, err := queries.NewListOrdersQuery(4, false)
		require.NoError(t, err)

		views, err := queries.NewListOrdersQueryHandler(readModel).Handle(ctx, q)
		require.NoError(t, err)

		require.Len(t, views, 2)
		assert.Equal(t, int64(9), views[0].OrderID)
		assert.Len(t, views[0].Items, 2)
		assert.NotNil(t, views[1].Items)
		assert.Empty(t, views[1].Items)
		readModel.AssertExpectations(t)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		readModel := &MockOrderReadModel{}
		readModel.On("ListOrderSummaries", ctx, int64(4), true).Return([]ports.OrderView{}, nil).Once()

		q, err := queries.NewListOrdersQuery(4, true)
		require.NoError(t, err)

		views, err := queries.NewListOrdersQueryHandler(readModel).Handle(ctx, q)
		assert.Nil(t, views)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "no orders found")
		readModel.AssertNotCalled(t, "ListOrderItems", mock.Anything, mock.Anything)
	})

	t.Run("query not constructed", func(t *testing.T) {
		readModel := &MockOrderReadModel{}

		_, err := queries.NewListOrdersQueryHandler(readModel).Handle(ctx, queries.ListOrdersQuery{})
		assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
	})
}
