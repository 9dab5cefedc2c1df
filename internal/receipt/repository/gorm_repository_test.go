package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	invdomain "github.com/bizstack/backoffice/internal/inventory/domain"
	invrepo "github.com/bizstack/backoffice/internal/inventory/repository"
	"github.com/bizstack/backoffice/internal/receipt/domain"
	"github.com/bizstack/backoffice/internal/receipt/repository"
)

func setupReceiptDB(t *testing.T) (*gorm.DB, *repository.GormGoodsReceiptRepository, *invrepo.GormInventoryRepository) {
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

	err = db.AutoMigrate(
		&invdomain.Inventory{},
		&domain.GoodsReceipt{},
		&domain.GoodsReceiptDetail{},
	)
	if err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db, repository.NewGormGoodsReceiptRepository(db, false), invrepo.NewGormInventoryRepository(db, false)
}

func receiptStock(t *testing.T, inv *invrepo.GormInventoryRepository, productID, warehouseID uint) int {
	t.Helper()
	row, err := inv.FindByProductAndWarehouse(productID, warehouseID)
	if err != nil {
		t.Fatalf("Failed to load inventory for product %d: %v", productID, err)
	}
	return row.QuantityAvailable
}

func TestReceiptCreate_IncrementsStock(t *testing.T) {
	_, repo, inv := setupReceiptDB(t)

	receipt := &domain.GoodsReceipt{
		WarehouseID: 2,
		Details: []domain.GoodsReceiptDetail{
			{ProductID: 7, Quantity: 10},
			{ProductID: 8, Quantity: 4},
		},
	}
	if err := repo.Create(receipt); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if receipt.ID == 0 {
		t.Fatal("Receipt ID not assigned")
	}

	if got := receiptStock(t, inv, 7, 2); got != 10 {
		t.Errorf("Product 7 stock = %d, want 10", got)
	}
	if got := receiptStock(t, inv, 8, 2); got != 4 {
		t.Errorf("Product 8 stock = %d, want 4", got)
	}
}

func TestReceiptUpdate_ReconcilesByDelta(t *testing.T) {
	_, repo, inv := setupReceiptDB(t)

	receipt := &domain.GoodsReceipt{
		WarehouseID: 1,
		Details: []domain.GoodsReceiptDetail{
			{ProductID: 1, Quantity: 10},
			{ProductID: 2, Quantity: 5},
		},
	}
	if err := repo.Create(receipt); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// New line set: product 1 drops to 6 (delta -4), product 2 is removed
	// (delta -5), product 3 appears with 2 (delta +2)
	updated, err := repo.Update(receipt.ID, []domain.GoodsReceiptDetail{
		{ProductID: 1, Quantity: 6},
		{ProductID: 3, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if got := receiptStock(t, inv, 1, 1); got != 6 {
		t.Errorf("Product 1 stock = %d, want 6 (delta applied once, not re-applied)", got)
	}
	if got := receiptStock(t, inv, 2, 1); got != 0 {
		t.Errorf("Product 2 stock = %d, want 0", got)
	}
	if got := receiptStock(t, inv, 3, 1); got != 2 {
		t.Errorf("Product 3 stock = %d, want 2", got)
	}

	if len(updated.Details) != 2 {
		t.Fatalf("Updated details = %d, want 2", len(updated.Details))
	}
	stored, err := repo.FindByID(receipt.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if len(stored.Details) != 2 {
		t.Errorf("Stored details = %d, want 2", len(stored.Details))
	}
}

func TestReceiptUpdate_UnchangedLinesAreNoOps(t *testing.T) {
	_, repo, inv := setupReceiptDB(t)

	receipt := &domain.GoodsReceipt{
		WarehouseID: 1,
		Details:     []domain.GoodsReceiptDetail{{ProductID: 1, Quantity: 10}},
	}
	if err := repo.Create(receipt); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Identical line set: stock must not move
	if _, err := repo.Update(receipt.ID, []domain.GoodsReceiptDetail{{ProductID: 1, Quantity: 10}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := receiptStock(t, inv, 1, 1); got != 10 {
		t.Errorf("Product 1 stock = %d, want 10", got)
	}
}

func TestReceiptUpdate_RejectedWhenStockConsumed(t *testing.T) {
	_, repo, inv := setupReceiptDB(t)

	receipt := &domain.GoodsReceipt{
		WarehouseID: 1,
		Details:     []domain.GoodsReceiptDetail{{ProductID: 1, Quantity: 10}},
	}
	if err := repo.Create(receipt); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// 8 of the 10 received units have since been sold
	if err := inv.Decrease(1, []invdomain.StockLine{{ProductID: 1, Quantity: 8}}); err != nil {
		t.Fatalf("Decrease failed: %v", err)
	}

	// Correcting the receipt down to 5 needs a decrement of 5, but only 2 remain
	_, err := repo.Update(receipt.ID, []domain.GoodsReceiptDetail{{ProductID: 1, Quantity: 5}})
	if !errors.Is(err, invdomain.ErrInsufficientStock) {
		t.Fatalf("Update error = %v, want ErrInsufficientStock", err)
	}

	// Stock and line set untouched
	if got := receiptStock(t, inv, 1, 1); got != 2 {
		t.Errorf("Product 1 stock = %d, want 2", got)
	}
	stored, _ := repo.FindByID(receipt.ID)
	if len(stored.Details) != 1 || stored.Details[0].Quantity != 10 {
		t.Errorf("Stored details changed after failed update: %+v", stored.Details)
	}
}

func TestReceiptUpdate_UnknownID(t *testing.T) {
	_, repo, _ := setupReceiptDB(t)

	_, err := repo.Update(77, []domain.GoodsReceiptDetail{{ProductID: 1, Quantity: 1}})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Update error = %v, want ErrRecordNotFound", err)
	}
}

func TestReceiptDelete_RevertsStock(t *testing.T) {
	db, repo, inv := setupReceiptDB(t)

	receipt := &domain.GoodsReceipt{
		WarehouseID: 1,
		Details:     []domain.GoodsReceiptDetail{{ProductID: 4, Quantity: 6}},
	}
	if err := repo.Create(receipt); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(receipt.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if got := receiptStock(t, inv, 4, 1); got != 0 {
		t.Errorf("Product 4 stock = %d, want 0 after revert", got)
	}
	if _, err := repo.FindByID(receipt.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByID after delete = %v, want ErrRecordNotFound", err)
	}
	var details int64
	db.Model(&domain.GoodsReceiptDetail{}).Where("goods_receipt_id = ?", receipt.ID).Count(&details)
	if details != 0 {
		t.Errorf("Detail rows after delete = %d, want 0", details)
	}
}

func TestReceiptDelete_RejectedWhenStockConsumed(t *testing.T) {
	_, repo, inv := setupReceiptDB(t)

	receipt := &domain.GoodsReceipt{
		WarehouseID: 1,
		Details:     []domain.GoodsReceiptDetail{{ProductID: 4, Quantity: 6}},
	}
	if err := repo.Create(receipt); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := inv.Decrease(1, []invdomain.StockLine{{ProductID: 4, Quantity: 5}}); err != nil {
		t.Fatalf("Decrease failed: %v", err)
	}

	err := repo.Delete(receipt.ID)
	if !errors.Is(err, invdomain.ErrInsufficientStock) {
		t.Fatalf("Delete error = %v, want ErrInsufficientStock", err)
	}

	// Receipt survives the failed delete
	if _, err := repo.FindByID(receipt.ID); err != nil {
		t.Errorf("Receipt disappeared after failed delete: %v", err)
	}
}
