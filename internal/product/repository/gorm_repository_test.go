package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bizstack/backoffice/internal/product/domain"
	"github.com/bizstack/backoffice/internal/product/repository"
)

func setupProductDB(t *testing.T) *repository.GormProductRepository {
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
	return repository.NewGormProductRepository(db)
}

func seedProducts(t *testing.T, repo *repository.GormProductRepository) {
	t.Helper()
	for _, p := range []domain.Product{
		{Name: "Espresso Beans", Barcode: "1001", Price: 1250},
		{Name: "Filter Coffee", Barcode: "1002", Price: 900},
		{Name: "Green Tea", Barcode: "2001", Price: 600},
	} {
		product := p
		if err := repo.Create(&product); err != nil {
			t.Fatalf("Failed to seed %q: %v", p.Name, err)
		}
	}
}

func TestProductSearch_MatchesNameOrBarcode(t *testing.T) {
	repo := setupProductDB(t)
	seedProducts(t, repo)

	// Case-insensitive name match
	found, err := repo.FindAll(10, 0, "id asc", "COFFEE")
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Filter Coffee" {
		t.Errorf("Search COFFEE = %v, want Filter Coffee only", found)
	}

	// Barcode substring match
	found, err = repo.FindAll(10, 0, "id asc", "100")
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("Search 100 = %d rows, want 2", len(found))
	}

	// Count shares the predicate
	count, err := repo.CountFiltered("100")
	if err != nil {
		t.Fatalf("CountFiltered failed: %v", err)
	}
	if count != 2 {
		t.Errorf("CountFiltered = %d, want 2", count)
	}
}

func TestProductFindAll_SortsAndPaginates(t *testing.T) {
	repo := setupProductDB(t)
	seedProducts(t, repo)

	page, err := repo.FindAll(2, 0, "price desc", "")
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("Page = %d rows, want 2", len(page))
	}
	if page[0].Price != 1250 || page[1].Price != 900 {
		t.Errorf("Prices = (%d, %d), want (1250, 900)", page[0].Price, page[1].Price)
	}

	rest, err := repo.FindAll(2, 2, "price desc", "")
	if err != nil {
		t.Fatalf("FindAll offset failed: %v", err)
	}
	if len(rest) != 1 || rest[0].Price != 600 {
		t.Errorf("Second page = %v, want the 600 row", rest)
	}
}

func TestProductDelete_SoftDeletes(t *testing.T) {
	repo := setupProductDB(t)
	seedProducts(t, repo)

	if err := repo.Delete(1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.FindByID(1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByID after delete = %v, want ErrRecordNotFound", err)
	}
	count, _ := repo.Count()
	if count != 2 {
		t.Errorf("Count after delete = %d, want 2", count)
	}

	// Deleting again reports not found
	if err := repo.Delete(1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Second delete = %v, want ErrRecordNotFound", err)
	}
}

func TestProductFindByIDs(t *testing.T) {
	repo := setupProductDB(t)
	seedProducts(t, repo)

	products, err := repo.FindByIDs([]uint{1, 3, 99})
	if err != nil {
		t.Fatalf("FindByIDs failed: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("FindByIDs = %d rows, want 2 (missing ids are skipped)", len(products))
	}
}
