package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	invhttp "github.com/bizstack/backoffice/internal/inventory/delivery/http"
	invdomain "github.com/bizstack/backoffice/internal/inventory/domain"
	invrepo "github.com/bizstack/backoffice/internal/inventory/repository"
	prodhttp "github.com/bizstack/backoffice/internal/product/delivery/http"
	proddomain "github.com/bizstack/backoffice/internal/product/domain"
	prodrepo "github.com/bizstack/backoffice/internal/product/repository"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/auth"
)

func setupDashboardRouter(t *testing.T) *mux.Router {
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

	if err := db.AutoMigrate(&proddomain.Product{}, &invdomain.Inventory{}); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if err := db.Create(&proddomain.Product{Name: "Espresso Beans", Barcode: "1001", Price: 1250}).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	registerDashboardRoutes(api, nil,
		prodhttp.NewProductHandler(prodrepo.NewGormProductRepository(db)),
		invhttp.NewInventoryHandler(invrepo.NewGormInventoryRepository(db, false)),
	)
	return router
}

func TestDashboardRoutes_RequireBearerToken(t *testing.T) {
	router := setupDashboardRouter(t)

	for _, path := range []string{"/api/v1/dashboard/product", "/api/v1/dashboard/inventory"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status = %d, want %d", path, rec.Code, http.StatusUnauthorized)
		}

		var body struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if body.Code != apperrors.CodeUnauthorized {
			t.Errorf("GET %s without token: code = %q, want %q", path, body.Code, apperrors.CodeUnauthorized)
		}
	}
}

func TestDashboardRoutes_ServeAuthenticatedRequests(t *testing.T) {
	router := setupDashboardRouter(t)

	token, err := auth.GenerateToken(1, "alex", "admin")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/product", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Data struct {
			Total int64 `json:"total"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Data.Total != 1 {
		t.Errorf("Total = %d, want 1", body.Data.Total)
	}
}
