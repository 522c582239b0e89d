package ports

import "context"

// ConsumerRepository answers questions about consumers needed for ordering.
type ConsumerRepository interface {
	// HasAddress reports whether the consumer has a delivery address on file.
	HasAddress(ctx context.Context, consumerID int64) (bool, error)
}
