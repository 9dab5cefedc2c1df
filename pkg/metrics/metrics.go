package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_requests_total",
			Help: "Total number of requests handled by the backoffice API",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backoffice_request_duration_seconds",
			Help:    "Duration of backoffice API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	RequestSummary = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "backoffice_request_duration_summary",
			Help: "Summary of request durations with client-side quantiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	TotalProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "backoffice_total_products",
		Help: "Total number of products in the system",
	})

	TotalInventoryRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "backoffice_total_inventory_rows",
		Help: "Total number of inventory rows in the system",
	})

	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_orders_placed_total",
		Help: "Total number of orders placed",
	})

	GoodsReceiptsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_goods_receipts_total",
		Help: "Total number of goods receipts created",
	})

	InsufficientStockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_insufficient_stock_rejections_total",
		Help: "Orders rejected because stock would have gone negative",
	})
)

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count, latency and summary for an endpoint
func Middleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		RequestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		RequestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		RequestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}
