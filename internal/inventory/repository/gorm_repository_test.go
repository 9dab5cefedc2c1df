package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bizstack/backoffice/internal/inventory/domain"
	"github.com/bizstack/backoffice/internal/inventory/repository"
	proddomain "github.com/bizstack/backoffice/internal/product/domain"
)

// setupInventoryDB opens a fresh in-memory database with the inventory and
// product tables migrated. Each test gets its own database.
func setupInventoryDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(&proddomain.Product{}, &domain.Inventory{}); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func stockOf(t *testing.T, repo domain.InventoryRepository, productID, warehouseID uint) int {
	t.Helper()
	row, err := repo.FindByProductAndWarehouse(productID, warehouseID)
	if err != nil {
		t.Fatalf("FindByProductAndWarehouse(%d, %d) failed: %v", productID, warehouseID, err)
	}
	return row.QuantityAvailable
}

func TestIncrease_CreatesMissingRow(t *testing.T) {
	db := setupInventoryDB(t)
	repo := repository.NewGormInventoryRepository(db, false)

	err := repo.Increase(2, []domain.StockLine{{ProductID: 7, Quantity: 10}})
	if err != nil {
		t.Fatalf("Increase failed: %v", err)
	}

	row, err := repo.FindByProductAndWarehouse(7, 2)
	if err != nil {
		t.Fatalf("Row was not created: %v", err)
	}
	if row.QuantityAvailable != 10 {
		t.Errorf("QuantityAvailable = %d, want 10", row.QuantityAvailable)
	}
	if row.MinimumStockLevel != 0 || row.MaximumStockLevel != 0 || row.ReorderPoint != 0 {
		t.Errorf("New row thresholds = (%d, %d, %d), want all zero",
			row.MinimumStockLevel, row.MaximumStockLevel, row.ReorderPoint)
	}
}

func TestIncrease_AccumulatesOnExistingRow(t *testing.T) {
	db := setupInventoryDB(t)
	repo := repository.NewGormInventoryRepository(db, false)

	for _, qty := range []int{10, 5} {
		if err := repo.Increase(2, []domain.StockLine{{ProductID: 7, Quantity: qty}}); err != nil {
			t.Fatalf("Increase(%d) failed: %v", qty, err)
		}
	}

	if got := stockOf(t, repo, 7, 2); got != 15 {
		t.Errorf("QuantityAvailable = %d, want 15", got)
	}

	var count int64
	db.Model(&domain.Inventory{}).Count(&count)
	if count != 1 {
		t.Errorf("Inventory rows = %d, want 1", count)
	}
}

func TestDecrease_GuardsAgainstOversell(t *testing.T) {
	db := setupInventoryDB(t)
	repo := repository.NewGormInventoryRepository(db, false)

	if err := repo.Increase(1, []domain.StockLine{{ProductID: 3, Quantity: 5}}); err != nil {
		t.Fatalf("Increase failed: %v", err)
	}

	// Draining the full quantity is allowed
	if err := repo.Decrease(1, []domain.StockLine{{ProductID: 3, Quantity: 5}}); err != nil {
		t.Fatalf("Decrease to zero failed: %v", err)
	}
	if got := stockOf(t, repo, 3, 1); got != 0 {
		t.Fatalf("QuantityAvailable = %d, want 0", got)
	}

	// One more unit must be rejected and leave the row untouched
	err := repo.Decrease(1, []domain.StockLine{{ProductID: 3, Quantity: 1}})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("Decrease error = %v, want ErrInsufficientStock", err)
	}
	if got := stockOf(t, repo, 3, 1); got != 0 {
		t.Errorf("QuantityAvailable after rejected decrease = %d, want 0", got)
	}
}

func TestDecrease_MissingRowIsInsufficient(t *testing.T) {
	db := setupInventoryDB(t)
	repo := repository.NewGormInventoryRepository(db, false)

	err := repo.Decrease(1, []domain.StockLine{{ProductID: 99, Quantity: 1}})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("Decrease error = %v, want ErrInsufficientStock", err)
	}
}

func TestDecrease_RollsBackEarlierLines(t *testing.T) {
	db := setupInventoryDB(t)
	repo := repository.NewGormInventoryRepository(db, false)

	if err := repo.Increase(1, []domain.StockLine{{ProductID: 1, Quantity: 10}}); err != nil {
		t.Fatalf("Increase failed: %v", err)
	}

	// Second line over-sells: the whole adjustment must roll back
	err := repo.Decrease(1, []domain.StockLine{
		{ProductID: 1, Quantity: 4},
		{ProductID: 2, Quantity: 1},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("Decrease error = %v, want ErrInsufficientStock", err)
	}
	if got := stockOf(t, repo, 1, 1); got != 10 {
		t.Errorf("QuantityAvailable after rollback = %d, want 10", got)
	}
}

func TestDecrease_BackorderDrivesBelowZero(t *testing.T) {
	db := setupInventoryDB(t)
	repo := repository.NewGormInventoryRepository(db, true)

	if err := repo.Increase(1, []domain.StockLine{{ProductID: 5, Quantity: 2}}); err != nil {
		t.Fatalf("Increase failed: %v", err)
	}
	if err := repo.Decrease(1, []domain.StockLine{{ProductID: 5, Quantity: 6}}); err != nil {
		t.Fatalf("Backorder decrease failed: %v", err)
	}
	if got := stockOf(t, repo, 5, 1); got != -4 {
		t.Errorf("QuantityAvailable = %d, want -4", got)
	}

	// A missing row starts from zero
	if err := repo.Decrease(1, []domain.StockLine{{ProductID: 6, Quantity: 3}}); err != nil {
		t.Fatalf("Backorder decrease on missing row failed: %v", err)
	}
	if got := stockOf(t, repo, 6, 1); got != -3 {
		t.Errorf("QuantityAvailable = %d, want -3", got)
	}
}

func TestUpdateConfigs(t *testing.T) {
	db := setupInventoryDB(t)
	repo := repository.NewGormInventoryRepository(db, false)

	if err := repo.Increase(1, []domain.StockLine{{ProductID: 1, Quantity: 10}}); err != nil {
		t.Fatalf("Increase failed: %v", err)
	}
	row, err := repo.FindByProductAndWarehouse(1, 1)
	if err != nil {
		t.Fatalf("FindByProductAndWarehouse failed: %v", err)
	}

	err = repo.UpdateConfigs([]domain.ThresholdConfig{
		{ID: row.ID, MinimumStockLevel: 2, MaximumStockLevel: 50, ReorderPoint: 5},
	})
	if err != nil {
		t.Fatalf("UpdateConfigs failed: %v", err)
	}

	updated, _ := repo.FindByProductAndWarehouse(1, 1)
	if updated.MinimumStockLevel != 2 || updated.MaximumStockLevel != 50 || updated.ReorderPoint != 5 {
		t.Errorf("Thresholds = (%d, %d, %d), want (2, 50, 5)",
			updated.MinimumStockLevel, updated.MaximumStockLevel, updated.ReorderPoint)
	}
}

func TestUpdateConfigs_UnknownIDRollsBack(t *testing.T) {
	db := setupInventoryDB(t)
	repo := repository.NewGormInventoryRepository(db, false)

	if err := repo.Increase(1, []domain.StockLine{{ProductID: 1, Quantity: 10}}); err != nil {
		t.Fatalf("Increase failed: %v", err)
	}
	row, _ := repo.FindByProductAndWarehouse(1, 1)

	err := repo.UpdateConfigs([]domain.ThresholdConfig{
		{ID: row.ID, MinimumStockLevel: 2},
		{ID: 9999, MinimumStockLevel: 1},
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("UpdateConfigs error = %v, want ErrRecordNotFound", err)
	}

	// The valid entry must not have been applied
	unchanged, _ := repo.FindByProductAndWarehouse(1, 1)
	if unchanged.MinimumStockLevel != 0 {
		t.Errorf("MinimumStockLevel = %d, want 0 after rollback", unchanged.MinimumStockLevel)
	}
}

func TestFindByWarehouse_JoinsProductData(t *testing.T) {
	db := setupInventoryDB(t)
	repo := repository.NewGormInventoryRepository(db, false)

	product := proddomain.Product{Name: "Espresso Beans", Barcode: "8901", Price: 1250}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	if err := repo.Increase(4, []domain.StockLine{{ProductID: product.ID, Quantity: 30}}); err != nil {
		t.Fatalf("Increase failed: %v", err)
	}

	rows, err := repo.FindByWarehouse(4, 10, 0, "created_at desc")
	if err != nil {
		t.Fatalf("FindByWarehouse failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Rows = %d, want 1", len(rows))
	}
	got := rows[0]
	if got.ProductName != "Espresso Beans" || got.ProductBarcode != "8901" || got.ProductPrice != 1250 {
		t.Errorf("Joined product = (%q, %q, %d), want (Espresso Beans, 8901, 1250)",
			got.ProductName, got.ProductBarcode, got.ProductPrice)
	}
	if got.QuantityAvailable != 30 {
		t.Errorf("QuantityAvailable = %d, want 30", got.QuantityAvailable)
	}

	// Soft-deleted products drop out of the listing and the count
	if err := db.Delete(&product).Error; err != nil {
		t.Fatalf("Failed to delete product: %v", err)
	}
	rows, err = repo.FindByWarehouse(4, 10, 0, "created_at desc")
	if err != nil {
		t.Fatalf("FindByWarehouse after delete failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Rows after product delete = %d, want 0", len(rows))
	}
	count, err := repo.CountByWarehouse(4)
	if err != nil {
		t.Fatalf("CountByWarehouse failed: %v", err)
	}
	if count != 0 {
		t.Errorf("CountByWarehouse = %d, want 0", count)
	}
}
