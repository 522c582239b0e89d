package consumerrepo

import (
	"context"

	"gorm.io/gorm"
)

// GormConsumerRepository implements ports.ConsumerRepository using GORM.
type GormConsumerRepository struct {
	db *gorm.DB
}

func NewGormConsumerRepository(db *gorm.DB) *GormConsumerRepository {
	return &GormConsumerRepository{db: db}
}

// HasAddress reports whether a delivery address exists for the consumer.
func (r *GormConsumerRepository) HasAddress(ctx context.Context, consumerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ConsumerAddressDTO{}).
		Where("consumer_id = ?", consumerID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
