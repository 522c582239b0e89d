package cmd

import (
	"log/slog"

	"fooddelivery/internal/adapters/out/cache"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/readmodel"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	catalogReader ports.CatalogReader
	readModel     ports.OrderReadModel
}

// NewCompositionRoot wires adapters into use case handlers. redisClient may be nil,
// in which case pricing reads restaurants straight from postgres.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	var catalogReader ports.CatalogReader = catalogrepo.NewGormCatalogRepository(gormDB)
	if redisClient != nil {
		catalogReader = cache.NewCachedCatalogReader(catalogReader, redisClient, cfg.RedisTTL, logger)
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		catalogReader: catalogReader,
		readModel:     readmodel.NewGormOrderReadModel(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() *commands.RegisterOrderCommandHandler {
	var f commands.RegisterOrderUoWFactory = FuncRegisterOrderUoWFactory(func() commands.RegisterOrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewRegisterOrderCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateChangeDeliveryStatusCommandHandler() *commands.ChangeDeliveryStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewChangeDeliveryStatusCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreatePriceCartQueryHandler() queries.PriceCartQueryHandler {
	return queries.NewPriceCartQueryHandler(c.catalogReader)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readModel)
}

func (c *CompositionRoot) CreateFindInconsistentOrdersQueryHandler() queries.FindInconsistentOrdersQueryHandler {
	return queries.NewFindInconsistentOrdersQueryHandler(c.readModel)
}

type FuncRegisterOrderUoWFactory func() commands.RegisterOrderUoW

func (f FuncRegisterOrderUoWFactory) Create() commands.RegisterOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
