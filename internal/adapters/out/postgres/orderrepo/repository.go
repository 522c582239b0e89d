package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Foreign keys created by the schema migration. Violations are reported as
// missing referenced objects.
const (
	FKOrdersRestaurant    = "fk_orders_restaurant"
	FKOrderItemsProduct   = "fk_order_items_product"
	pgForeignKeyViolation = "23503"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects written aggregates so their events can be published after commit.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate *order.Order)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the header and then all line items in one batch statement. It must
// run inside a transaction: a failed item insert leaves the header behind otherwise.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() != 0 {
		return order.ErrOrderAlreadyPersisted
	}

	db := r.db.WithContext(ctx)

	dto := fromDomain(aggregate)
	result := db.Omit(clause.Associations).Create(&dto)
	if result.Error != nil {
		return translateWriteError("insert order", result.Error)
	}
	if result.RowsAffected == 0 || dto.ID == 0 {
		return errs.NewWriteFailedError("insert order")
	}

	items := itemsFromDomain(dto.ID, aggregate.Items())
	result = db.Create(&items)
	if result.Error != nil {
		return translateWriteError("insert order items", result.Error)
	}
	if int(result.RowsAffected) != len(items) {
		return errs.NewWriteFailedErrorWithCause("insert order items",
			fmt.Errorf("%d of %d rows inserted", result.RowsAffected, len(items)))
	}

	if err := aggregate.MarkPersisted(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// GetForConsumer retrieves an order header. Orders of other consumers are
// reported as not found.
func (r *GormOrderRepository) GetForConsumer(ctx context.Context, orderID, consumerID int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND consumer_id = ?", orderID, consumerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateDeliveryStatus writes only the delivered column. Postgres counts matched
// rows, so writing the current value still affects one row.
func (r *GormOrderRepository) UpdateDeliveryStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND consumer_id = ?", aggregate.ID(), aggregate.ConsumerID()).
		Update("delivered", aggregate.Delivered())
	if result.Error != nil {
		return translateWriteError("update delivery status", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewWriteFailedError("update delivery status")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func translateWriteError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgErr.Code != pgForeignKeyViolation {
		return errs.NewWriteFailedErrorWithCause(operation, err)
	}

	switch pgErr.ConstraintName {
	case FKOrdersRestaurant:
		return errs.NewObjectNotFoundErrorWithCause("restaurant", pgErr.Detail, err)
	case FKOrderItemsProduct:
		return errs.NewObjectNotFoundErrorWithCause("product", pgErr.Detail, err)
	default:
		return errs.NewObjectNotFoundErrorWithCause(pgErr.ConstraintName, pgErr.Detail, err)
	}
}
