//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/inventory/delivery/http"
	"github.com/bizstack/backoffice/internal/inventory/domain"
	"github.com/bizstack/backoffice/internal/inventory/repository"
	"github.com/bizstack/backoffice/internal/inventory/usecase/command"
	"github.com/bizstack/backoffice/internal/inventory/usecase/query"
)

// ProvideInventoryRepository provides the traced inventory repository
func ProvideInventoryRepository(db *gorm.DB, allowBackorder bool) domain.InventoryRepository {
	return repository.NewGormInventoryRepositoryWithTracing(db, allowBackorder)
}

func ProvideIncreaseStockHandler(repo domain.InventoryRepository) *command.IncreaseStockHandler {
	return command.NewIncreaseStockHandler(repo)
}

func ProvideDecreaseStockHandler(repo domain.InventoryRepository) *command.DecreaseStockHandler {
	return command.NewDecreaseStockHandler(repo)
}

func ProvideUpdateConfigsHandler(repo domain.InventoryRepository) *command.UpdateConfigsHandler {
	return command.NewUpdateConfigsHandler(repo)
}

func ProvideListByWarehouseHandler(repo domain.InventoryRepository) *query.ListByWarehouseHandler {
	return query.NewListByWarehouseHandler(repo)
}

func ProvideGetStatsHandler(repo domain.InventoryRepository) *query.GetStatsHandler {
	return query.NewGetStatsHandler(repo)
}

var HandlerSet = wire.NewSet(
	ProvideInventoryRepository,
	ProvideIncreaseStockHandler,
	ProvideDecreaseStockHandler,
	ProvideUpdateConfigsHandler,
	ProvideListByWarehouseHandler,
	ProvideGetStatsHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, allowBackorder bool) (*http.InventoryHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewInventoryHandlerWithDI,
	)
	return nil, nil
}
