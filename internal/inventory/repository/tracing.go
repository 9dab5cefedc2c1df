package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormInventoryRepositoryWithTracing wraps GormInventoryRepository with tracing
type GormInventoryRepositoryWithTracing struct {
	*GormInventoryRepository
}

// NewGormInventoryRepositoryWithTracing creates a new repository with tracing
func NewGormInventoryRepositoryWithTracing(db *gorm.DB, allowBackorder bool) *GormInventoryRepositoryWithTracing {
	return &GormInventoryRepositoryWithTracing{
		GormInventoryRepository: NewGormInventoryRepository(db, allowBackorder),
	}
}

// IncreaseWithContext applies a stock increase under a span
func (r *GormInventoryRepositoryWithTracing) IncreaseWithContext(ctx context.Context, warehouseID uint, lines []domain.StockLine) error {
	_, span := tracer.Start(ctx, "repository.Increase",
		trace.WithAttributes(
			attribute.Int("warehouse.id", int(warehouseID)),
			attribute.Int("lines.count", len(lines)),
		),
	)
	defer span.End()

	err := r.GormInventoryRepository.Increase(warehouseID, lines)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// DecreaseWithContext applies a stock decrease under a span
func (r *GormInventoryRepositoryWithTracing) DecreaseWithContext(ctx context.Context, warehouseID uint, lines []domain.StockLine) error {
	_, span := tracer.Start(ctx, "repository.Decrease",
		trace.WithAttributes(
			attribute.Int("warehouse.id", int(warehouseID)),
			attribute.Int("lines.count", len(lines)),
		),
	)
	defer span.End()

	err := r.GormInventoryRepository.Decrease(warehouseID, lines)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// FindByWarehouseWithContext lists warehouse stock under a span
func (r *GormInventoryRepositoryWithTracing) FindByWarehouseWithContext(ctx context.Context, warehouseID uint, limit, offset int, order string) ([]domain.InventoryWithProduct, error) {
	_, span := tracer.Start(ctx, "repository.FindByWarehouse",
		trace.WithAttributes(
			attribute.Int("warehouse.id", int(warehouseID)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	rows, err := r.GormInventoryRepository.FindByWarehouse(warehouseID, limit, offset, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(rows)))
	return rows, nil
}
