//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	proddomain "github.com/bizstack/backoffice/internal/product/domain"
	prodrepo "github.com/bizstack/backoffice/internal/product/repository"
	whdomain "github.com/bizstack/backoffice/internal/warehouse/domain"
	whrepo "github.com/bizstack/backoffice/internal/warehouse/repository"

	"github.com/bizstack/backoffice/internal/order/delivery/http"
	"github.com/bizstack/backoffice/internal/order/domain"
	"github.com/bizstack/backoffice/internal/order/repository"
	"github.com/bizstack/backoffice/internal/order/usecase/command"
	"github.com/bizstack/backoffice/internal/order/usecase/query"
	"github.com/bizstack/backoffice/kafka"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB, allowBackorder bool) domain.OrderRepository {
	return repository.NewGormOrderRepository(db, allowBackorder)
}

func ProvideProductRepository(db *gorm.DB) proddomain.ProductRepository {
	return prodrepo.NewGormProductRepositoryWithTracing(db)
}

func ProvideWarehouseRepository(db *gorm.DB) whdomain.WarehouseRepository {
	return whrepo.NewGormWarehouseRepository(db)
}

// ProvideEventPublisher adapts the kafka publisher to the usecase contract
func ProvideEventPublisher(publisher *kafka.Publisher) command.OrderEventPublisher {
	return publisher
}

func ProvideCreateOrderHandler(
	orders domain.OrderRepository,
	products proddomain.ProductRepository,
	warehouses whdomain.WarehouseRepository,
	publisher command.OrderEventPublisher,
) *command.CreateOrderHandler {
	return command.NewCreateOrderHandler(orders, products, warehouses, publisher)
}

func ProvideDeleteOrderHandler(repo domain.OrderRepository) *command.DeleteOrderHandler {
	return command.NewDeleteOrderHandler(repo)
}

func ProvideGetOrderHandler(repo domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(repo)
}

func ProvideListOrdersHandler(repo domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(repo)
}

var HandlerSet = wire.NewSet(
	ProvideOrderRepository,
	ProvideProductRepository,
	ProvideWarehouseRepository,
	ProvideEventPublisher,
	ProvideCreateOrderHandler,
	ProvideDeleteOrderHandler,
	ProvideGetOrderHandler,
	ProvideListOrdersHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, allowBackorder bool, publisher *kafka.Publisher) (*http.OrderHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewOrderHandler,
	)
	return nil, nil
}
