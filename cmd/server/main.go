package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	custdomain "github.com/bizstack/backoffice/internal/customer/domain"
	custhttp "github.com/bizstack/backoffice/internal/customer/delivery/http"
	custrepo "github.com/bizstack/backoffice/internal/customer/repository"
	invdomain "github.com/bizstack/backoffice/internal/inventory/domain"
	invhttp "github.com/bizstack/backoffice/internal/inventory/delivery/http"
	invrepo "github.com/bizstack/backoffice/internal/inventory/repository"
	orderdomain "github.com/bizstack/backoffice/internal/order/domain"
	orderhttp "github.com/bizstack/backoffice/internal/order/delivery/http"
	orderrepo "github.com/bizstack/backoffice/internal/order/repository"
	ordercommand "github.com/bizstack/backoffice/internal/order/usecase/command"
	orderquery "github.com/bizstack/backoffice/internal/order/usecase/query"
	paydomain "github.com/bizstack/backoffice/internal/payment/domain"
	payhttp "github.com/bizstack/backoffice/internal/payment/delivery/http"
	payrepo "github.com/bizstack/backoffice/internal/payment/repository"
	proddomain "github.com/bizstack/backoffice/internal/product/domain"
	prodhttp "github.com/bizstack/backoffice/internal/product/delivery/http"
	prodrepo "github.com/bizstack/backoffice/internal/product/repository"
	receiptdomain "github.com/bizstack/backoffice/internal/receipt/domain"
	receipthttp "github.com/bizstack/backoffice/internal/receipt/delivery/http"
	receiptrepo "github.com/bizstack/backoffice/internal/receipt/repository"
	receiptcommand "github.com/bizstack/backoffice/internal/receipt/usecase/command"
	receiptquery "github.com/bizstack/backoffice/internal/receipt/usecase/query"
	userdomain "github.com/bizstack/backoffice/internal/user/domain"
	userhttp "github.com/bizstack/backoffice/internal/user/delivery/http"
	userrepo "github.com/bizstack/backoffice/internal/user/repository"
	whdomain "github.com/bizstack/backoffice/internal/warehouse/domain"
	whhttp "github.com/bizstack/backoffice/internal/warehouse/delivery/http"
	whrepo "github.com/bizstack/backoffice/internal/warehouse/repository"

	"github.com/bizstack/backoffice/internal/config"
	"github.com/bizstack/backoffice/kafka"
	"github.com/bizstack/backoffice/pkg/auth"
	"github.com/bizstack/backoffice/pkg/cache"
	"github.com/bizstack/backoffice/pkg/database"
	"github.com/bizstack/backoffice/pkg/logger"
	"github.com/bizstack/backoffice/pkg/metrics"
	"github.com/bizstack/backoffice/pkg/tracing"
)

const dashboardCacheTTL = 30 * time.Second

// registerDashboardRoutes mounts the cached dashboard counters. The auth
// check sits inside the metrics wrapper like every other route; the cache
// only ever sees authenticated requests.
func registerDashboardRoutes(api *mux.Router, redisClient *redis.Client, productHandler *prodhttp.ProductHandler, inventoryHandler *invhttp.InventoryHandler) {
	api.HandleFunc("/dashboard/product",
		metrics.Middleware("/dashboard/product",
			auth.Middleware(cache.Middleware(redisClient, dashboardCacheTTL, productHandler.Stats)))).Methods("GET")
	api.HandleFunc("/dashboard/inventory",
		metrics.Middleware("/dashboard/inventory",
			auth.Middleware(cache.Middleware(redisClient, dashboardCacheTTL, inventoryHandler.Stats)))).Methods("GET")
}

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&userdomain.User{},
		&proddomain.Product{},
		&whdomain.Warehouse{},
		&custdomain.Customer{},
		&invdomain.Inventory{},
		&orderdomain.Order{},
		&orderdomain.OrderDetail{},
		&paydomain.Payment{},
		&receiptdomain.GoodsReceipt{},
		&receiptdomain.GoodsReceiptDetail{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to kafka")
		}
		defer publisher.Close()
	}

	redisClient := cache.NewClient(cfg.RedisAddr)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Repositories
	users := userrepo.NewGormUserRepository(db)
	products := prodrepo.NewGormProductRepositoryWithTracing(db)
	warehouses := whrepo.NewGormWarehouseRepository(db)
	customers := custrepo.NewGormCustomerRepository(db)
	inventories := invrepo.NewGormInventoryRepositoryWithTracing(db, cfg.AllowBackorder)
	orders := orderrepo.NewGormOrderRepository(db, cfg.AllowBackorder)
	payments := payrepo.NewGormPaymentRepository(db)
	receipts := receiptrepo.NewGormGoodsReceiptRepository(db, cfg.AllowBackorder)

	// Handlers
	userHandler := userhttp.NewUserHandler(users)
	productHandler := prodhttp.NewProductHandler(products)
	warehouseHandler := whhttp.NewWarehouseHandler(warehouses)
	customerHandler := custhttp.NewCustomerHandler(customers)
	inventoryHandler := invhttp.NewInventoryHandler(inventories)
	paymentHandler := payhttp.NewPaymentHandler(payments)
	orderHandler := orderhttp.NewOrderHandler(
		ordercommand.NewCreateOrderHandler(orders, products, warehouses, publisher),
		ordercommand.NewDeleteOrderHandler(orders),
		orderquery.NewGetOrderHandler(orders),
		orderquery.NewListOrdersHandler(orders),
	)
	receiptHandler := receipthttp.NewReceiptHandler(
		receiptcommand.NewCreateReceiptHandler(receipts, warehouses, publisher),
		receiptcommand.NewUpdateReceiptHandler(receipts),
		receiptcommand.NewDeleteReceiptHandler(receipts),
		receiptquery.NewGetReceiptHandler(receipts),
		receiptquery.NewListReceiptsHandler(receipts),
	)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	userHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	warehouseHandler.RegisterRoutes(api)
	customerHandler.RegisterRoutes(api)
	inventoryHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	receiptHandler.RegisterRoutes(api)
	paymentHandler.RegisterRoutes(api)

	registerDashboardRoutes(api, redisClient, productHandler, inventoryHandler)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())
	userhttp.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Bool("kafka", publisher != nil).
			Bool("redis", redisClient != nil).
			Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}
