package queries_test

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetRestaurant(ctx context.Context, id int64) (catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Restaurant), args.Error(1)
}

func (m *MockCatalogReader) GetProducts(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]catalog.Product)
	return products, args.Error(1)
}

type MockOrderReadModel struct{ mock.Mock }

func (m *MockOrderReadModel) ListOrderSummaries(
	ctx context.Context,
	consumerID int64,
	delivered bool,
) ([]ports.OrderView, error) {
	args := m.Called(ctx, consumerID, delivered)
	views, _ := args.Get(0).([]ports.OrderView)
	return views, args.Error(1)
}

func (m *MockOrderReadModel) ListOrderItems(
	ctx context.Context,
	orderIDs []int64,
) (map[int64][]ports.OrderItemView, error) {
	args := m.Called(ctx, orderIDs)
	items, _ := args.Get(0).(map[int64][]ports.OrderItemView)
	return items, args.Error(1)
}

func (m *MockOrderReadModel) FindTotalsMismatches(ctx context.Context) ([]ports.TotalsMismatch, error) {
	args := m.Called(ctx)
	mismatches, _ := args.Get(0).([]ports.TotalsMismatch)
	return mismatches, args.Error(1)
}
