// Package commands contains the operations that change order state.
// Every command follows the same pattern: constructor validation, a fresh unit of
// work, deferred rollback, commit.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each command handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides the catalog repository bound to the transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// ConsumerRepoFactory provides the consumer repository bound to the transaction.
	ConsumerRepoFactory interface {
		ConsumerRepository() ports.ConsumerRepository
	}

	// RegisterOrderUoW spans every read and write of order registration.
	RegisterOrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
		ConsumerRepoFactory
	}

	// RegisterOrderUoWFactory creates registration units of work.
	RegisterOrderUoWFactory interface {
		Create() RegisterOrderUoW
	}

	// OrderUoW manages transactions that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order-only units of work.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
