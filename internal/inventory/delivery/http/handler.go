package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/inventory/domain"
	"github.com/bizstack/backoffice/internal/inventory/usecase/command"
	"github.com/bizstack/backoffice/internal/inventory/usecase/query"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/auth"
	"github.com/bizstack/backoffice/pkg/metrics"
	"github.com/bizstack/backoffice/pkg/pagination"
	"github.com/bizstack/backoffice/pkg/web"
)

// Columns are unqualified; the repository scopes them to the
// inventories table to keep the product join unambiguous.
var sortColumns = map[string]string{
	"id":                "id",
	"quantityAvailable": "quantity_available",
	"createdAt":         "created_at",
	"updatedAt":         "updated_at",
}

// stockLineRequest is one adjustment line in increase/decrease bodies
type stockLineRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

func toStockLines(reqs []stockLineRequest) []domain.StockLine {
	lines := make([]domain.StockLine, 0, len(reqs))
	for _, req := range reqs {
		lines = append(lines, domain.StockLine{ProductID: req.ProductID, Quantity: req.Quantity})
	}
	return lines
}

// InventoryHandler handles HTTP requests for inventory
type InventoryHandler struct {
	increaseHandler *command.IncreaseStockHandler
	decreaseHandler *command.DecreaseStockHandler
	configsHandler  *command.UpdateConfigsHandler

	listHandler  *query.ListByWarehouseHandler
	statsHandler *query.GetStatsHandler
}

// NewInventoryHandler creates a new inventory handler (manual DI)
func NewInventoryHandler(repo domain.InventoryRepository) *InventoryHandler {
	return NewInventoryHandlerWithDI(
		command.NewIncreaseStockHandler(repo),
		command.NewDecreaseStockHandler(repo),
		command.NewUpdateConfigsHandler(repo),
		query.NewListByWarehouseHandler(repo),
		query.NewGetStatsHandler(repo),
	)
}

// NewInventoryHandlerWithDI creates a new inventory handler from pre-built
// command and query handlers. Used by Wire.
func NewInventoryHandlerWithDI(
	increaseHandler *command.IncreaseStockHandler,
	decreaseHandler *command.DecreaseStockHandler,
	configsHandler *command.UpdateConfigsHandler,
	listHandler *query.ListByWarehouseHandler,
	statsHandler *query.GetStatsHandler,
) *InventoryHandler {
	return &InventoryHandler{
		increaseHandler: increaseHandler,
		decreaseHandler: decreaseHandler,
		configsHandler:  configsHandler,
		listHandler:     listHandler,
		statsHandler:    statsHandler,
	}
}

// RegisterRoutes registers inventory routes on the given router
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/inventory/warehouse/{id}", metrics.Middleware("/inventory/warehouse/{id}", auth.Middleware(h.ListByWarehouse))).Methods("GET")
	router.HandleFunc("/inventory/configs", metrics.Middleware("/inventory/configs", auth.Middleware(h.UpdateConfigs))).Methods("PUT")
	router.HandleFunc("/inventory/increase", metrics.Middleware("/inventory/increase", auth.Middleware(h.Increase))).Methods("POST")
	router.HandleFunc("/inventory/decrease", metrics.Middleware("/inventory/decrease", auth.Middleware(h.Decrease))).Methods("POST")
}

// Stats returns the total inventory row count for the dashboard
func (h *InventoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle()
	if err != nil {
		web.RespondError(w, r, err)
		return
	}
	metrics.TotalInventoryRows.Set(float64(stats.Total))
	web.RespondData(w, http.StatusOK, stats)
}

// ListByWarehouse handles GET /api/v1/inventory/warehouse/{id}
func (h *InventoryHandler) ListByWarehouse(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	params, err := pagination.FromQuery(r.URL.Query(), sortColumns)
	if err != nil {
		web.RespondError(w, r, apperrors.InvalidContent(err.Error()))
		return
	}

	rows, total, err := h.listHandler.Handle(r.Context(), query.ListByWarehouseQuery{
		WarehouseID: warehouseID,
		Limit:       params.Limit,
		Offset:      params.Offset(),
		Order:       params.OrderClause(),
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondList(w, rows, pagination.NewMeta(params, total))
}

// UpdateConfigs handles PUT /api/v1/inventory/configs
func (h *InventoryHandler) UpdateConfigs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Configs []domain.ThresholdConfig `json:"configs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	if err := h.configsHandler.Handle(command.UpdateConfigsCommand{Configs: req.Configs}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("inventory row not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, map[string]string{"message": "configs updated"})
}

// Increase handles POST /api/v1/inventory/increase
func (h *InventoryHandler) Increase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WarehouseID uint               `json:"warehouseId"`
		Lines       []stockLineRequest `json:"lines"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	err := h.increaseHandler.Handle(r.Context(), command.IncreaseStockCommand{
		WarehouseID: req.WarehouseID,
		Lines:       toStockLines(req.Lines),
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, map[string]string{"message": "stock increased"})
}

// Decrease handles POST /api/v1/inventory/decrease
func (h *InventoryHandler) Decrease(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WarehouseID uint               `json:"warehouseId"`
		Lines       []stockLineRequest `json:"lines"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	err := h.decreaseHandler.Handle(r.Context(), command.DecreaseStockCommand{
		WarehouseID: req.WarehouseID,
		Lines:       toStockLines(req.Lines),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.InsufficientStockRejections.Inc()
			err = apperrors.InsufficientStock(err.Error())
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, map[string]string{"message": "stock decreased"})
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, apperrors.InvalidParam("id must be a positive integer")
	}
	return uint(id), nil
}
