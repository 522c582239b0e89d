package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSubmission() services.OrderSubmission {
	return services.OrderSubmission{
		RestaurantID: 3,
		Subtotal:     2000,
		DeliveryFee:  500,
		Total:        2500,
		Products: []services.SubmittedProduct{
			{ProductID: 1, Quantity: 2, Price: 1000, Subtotal: 2000},
		},
	}
}

type registerFixture struct {
	orders    *MockOrderRepository
	catalog   *MockCatalogRepository
	consumers *MockConsumerRepository
	uow       *MockRegisterOrderUoW
	factory   *MockRegisterOrderUoWFactory
	handler   commands.RegisterOrderCommandHandler
}

func newRegisterFixture() *registerFixture {
	f := &registerFixture{
		orders:    new(MockOrderRepository),
		catalog:   new(MockCatalogRepository),
		consumers: new(MockConsumerRepository),
		uow:       new(MockRegisterOrderUoW),
		factory:   new(MockRegisterOrderUoWFactory),
	}
	f.factory.On("Create").Return(f.uow).Maybe()
	f.uow.On("ConsumerRepository").Return(f.consumers).Maybe()
	f.uow.On("CatalogRepository").Return(f.catalog).Maybe()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.handler = commands.NewRegisterOrderCommandHandler(f.factory)
	return f
}

func (f *registerFixture) assertExpectations(t *testing.T) {
	f.orders.AssertExpectations(t)
	f.catalog.AssertExpectations(t)
	f.consumers.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func activePizza() []catalog.Product {
	return []catalog.Product{{ID: 1, RestaurantID: 3, Name: "Margherita", Price: 1000, Active: true}}
}

func TestRegisterOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand(10, validSubmission())
	f := newRegisterFixture()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.consumers.On("HasAddress", ctx, int64(10)).Return(true, nil).Once(),
		f.catalog.On("LockProducts", ctx, []int64{1}).Return(activePizza(), nil).Once(),
		f.catalog.On("GetRestaurant", ctx, int64(3)).Return(catalog.Restaurant{ID: 3, DeliveryFee: 500}, nil).Once(),
		f.orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ConsumerID() == 10 && o.RestaurantID() == 3 && o.Total() == 2500 &&
				len(o.Items()) == 1 && !o.Delivered()
		})).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_ValidationErrorSkipsStore(t *testing.T) {
	ctx := t.Context()
	submission := validSubmission()
	submission.Products[0] = services.SubmittedProduct{ProductID: 1, Quantity: 1, Price: 1500, Subtotal: 1500}
	cmd, _ := commands.NewRegisterOrderCommand(10, submission)
	f := newRegisterFixture()

	err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	f.factory.AssertNotCalled(t, "Create")
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRegisterOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	f := newRegisterFixture()

	err := f.handler.Handle(t.Context(), commands.RegisterOrderCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterOrderCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}

func TestRegisterOrderCommandHandler_Handle_AddressRequired(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand(10, validSubmission())
	f := newRegisterFixture()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.consumers.On("HasAddress", ctx, int64(10)).Return(false, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Contains(t, err.Error(), "address required")
	f.catalog.AssertNotCalled(t, "LockProducts", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_ProductDeactivatedSinceQuote(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand(10, validSubmission())
	f := newRegisterFixture()
	deactivated := activePizza()
	deactivated[0].Active = false

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.consumers.On("HasAddress", ctx, int64(10)).Return(true, nil).Once(),
		f.catalog.On("LockProducts", ctx, []int64{1}).Return(deactivated, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "Margherita")
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_ProductOfAnotherRestaurant(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand(10, validSubmission())
	f := newRegisterFixture()
	foreign := activePizza()
	foreign[0].RestaurantID = 4

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.consumers.On("HasAddress", ctx, int64(10)).Return(true, nil).Once(),
		f.catalog.On("LockProducts", ctx, []int64{1}).Return(foreign, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "restaurant 3")
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.catalog.AssertNotCalled(t, "GetRestaurant", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_ProductMissing(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand(10, validSubmission())
	f := newRegisterFixture()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.consumers.On("HasAddress", ctx, int64(10)).Return(true, nil).Once(),
		f.catalog.On("LockProducts", ctx, []int64{1}).Return([]catalog.Product{}, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_RestaurantMissing(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand(10, validSubmission())
	f := newRegisterFixture()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.consumers.On("HasAddress", ctx, int64(10)).Return(true, nil).Once(),
		f.catalog.On("LockProducts", ctx, []int64{1}).Return(activePizza(), nil).Once(),
		f.catalog.On("GetRestaurant", ctx, int64(3)).
			Return(catalog.Restaurant{}, errs.NewObjectNotFoundError("restaurant", int64(3))).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_WriteFailedRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand(10, validSubmission())
	f := newRegisterFixture()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.consumers.On("HasAddress", ctx, int64(10)).Return(true, nil).Once(),
		f.catalog.On("LockProducts", ctx, []int64{1}).Return(activePizza(), nil).Once(),
		f.catalog.On("GetRestaurant", ctx, int64(3)).Return(catalog.Restaurant{ID: 3}, nil).Once(),
		f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.NewWriteFailedError("insert order items")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrWriteFailed)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand(10, validSubmission())
	f := newRegisterFixture()
	f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	err := f.handler.Handle(ctx, cmd)

	require.Error(t, err)
	f.consumers.AssertNotCalled(t, "HasAddress", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestRegisterOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand(10, validSubmission())
	f := newRegisterFixture()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.consumers.On("HasAddress", ctx, int64(10)).Return(true, nil).Once(),
		f.catalog.On("LockProducts", ctx, []int64{1}).Return(activePizza(), nil).Once(),
		f.catalog.On("GetRestaurant", ctx, int64(3)).Return(catalog.Restaurant{ID: 3}, nil).Once(),
		f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := f.handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	f.assertExpectations(t)
}
