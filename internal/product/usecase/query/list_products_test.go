package query_test

import (
	"context"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bizstack/backoffice/internal/product/domain"
	"github.com/bizstack/backoffice/internal/product/repository"
	"github.com/bizstack/backoffice/internal/product/usecase/query"
)

func setupProductQueryDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if err := db.Create(&domain.Product{Name: "Espresso Beans", Barcode: "1001", Price: 1250}).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return db
}

func TestListProducts_TracedRepositoryEmitsSpan(t *testing.T) {
	db := setupProductQueryDB(t)

	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	handler := query.NewListProductsHandler(repository.NewGormProductRepositoryWithTracing(db))
	products, total, err := handler.Handle(context.Background(), query.ListProductsQuery{})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if len(products) != 1 || total != 1 {
		t.Errorf("Got %d products, total %d, want 1 and 1", len(products), total)
	}

	var found bool
	for _, span := range recorder.Ended() {
		if span.Name() == "repository.FindAll" {
			found = true
		}
	}
	if !found {
		t.Error("No repository.FindAll span recorded through the traced repository")
	}
}

func TestListProducts_PlainRepository(t *testing.T) {
	db := setupProductQueryDB(t)

	handler := query.NewListProductsHandler(repository.NewGormProductRepository(db))
	products, total, err := handler.Handle(context.Background(), query.ListProductsQuery{})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if len(products) != 1 || total != 1 {
		t.Errorf("Got %d products, total %d, want 1 and 1", len(products), total)
	}
}
