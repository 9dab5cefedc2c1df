//go:build wireinject
// +build wireinject

package receipt

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	whdomain "github.com/bizstack/backoffice/internal/warehouse/domain"
	whrepo "github.com/bizstack/backoffice/internal/warehouse/repository"

	"github.com/bizstack/backoffice/internal/receipt/delivery/http"
	"github.com/bizstack/backoffice/internal/receipt/domain"
	"github.com/bizstack/backoffice/internal/receipt/repository"
	"github.com/bizstack/backoffice/internal/receipt/usecase/command"
	"github.com/bizstack/backoffice/internal/receipt/usecase/query"
	"github.com/bizstack/backoffice/kafka"
)

// ProvideGoodsReceiptRepository provides the goods-receipt repository
func ProvideGoodsReceiptRepository(db *gorm.DB, allowBackorder bool) domain.GoodsReceiptRepository {
	return repository.NewGormGoodsReceiptRepository(db, allowBackorder)
}

func ProvideWarehouseRepository(db *gorm.DB) whdomain.WarehouseRepository {
	return whrepo.NewGormWarehouseRepository(db)
}

// ProvideEventPublisher adapts the kafka publisher to the usecase contract
func ProvideEventPublisher(publisher *kafka.Publisher) command.ReceiptEventPublisher {
	return publisher
}

func ProvideCreateReceiptHandler(
	receipts domain.GoodsReceiptRepository,
	warehouses whdomain.WarehouseRepository,
	publisher command.ReceiptEventPublisher,
) *command.CreateReceiptHandler {
	return command.NewCreateReceiptHandler(receipts, warehouses, publisher)
}

func ProvideUpdateReceiptHandler(receipts domain.GoodsReceiptRepository) *command.UpdateReceiptHandler {
	return command.NewUpdateReceiptHandler(receipts)
}

func ProvideDeleteReceiptHandler(receipts domain.GoodsReceiptRepository) *command.DeleteReceiptHandler {
	return command.NewDeleteReceiptHandler(receipts)
}

func ProvideGetReceiptHandler(repo domain.GoodsReceiptRepository) *query.GetReceiptHandler {
	return query.NewGetReceiptHandler(repo)
}

func ProvideListReceiptsHandler(repo domain.GoodsReceiptRepository) *query.ListReceiptsHandler {
	return query.NewListReceiptsHandler(repo)
}

var HandlerSet = wire.NewSet(
	ProvideGoodsReceiptRepository,
	ProvideWarehouseRepository,
	ProvideEventPublisher,
	ProvideCreateReceiptHandler,
	ProvideUpdateReceiptHandler,
	ProvideDeleteReceiptHandler,
	ProvideGetReceiptHandler,
	ProvideListReceiptsHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, allowBackorder bool, publisher *kafka.Publisher) (*http.ReceiptHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewReceiptHandler,
	)
	return nil, nil
}
