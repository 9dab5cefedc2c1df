package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	invdomain "github.com/bizstack/backoffice/internal/inventory/domain"
	"github.com/bizstack/backoffice/internal/order/usecase/command"
	"github.com/bizstack/backoffice/internal/order/usecase/query"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/auth"
	"github.com/bizstack/backoffice/pkg/metrics"
	"github.com/bizstack/backoffice/pkg/pagination"
	"github.com/bizstack/backoffice/pkg/web"
)

var sortColumns = map[string]string{
	"id":        "id",
	"total":     "total",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	createHandler *command.CreateOrderHandler
	deleteHandler *command.DeleteOrderHandler

	getHandler  *query.GetOrderHandler
	listHandler *query.ListOrdersHandler
}

// NewOrderHandler creates a new order handler from pre-built command and
// query handlers. Also used by Wire.
func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	deleteHandler *command.DeleteOrderHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
) *OrderHandler {
	return &OrderHandler{
		createHandler: createHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers order routes on the given router.
// Orders are immutable once placed, so there is no PUT route; a
// mistaken order is deleted, which restores the stock it consumed.
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/order", metrics.Middleware("/order", auth.Middleware(h.List))).Methods("GET")
	router.HandleFunc("/order", metrics.Middleware("/order", auth.Middleware(h.Create))).Methods("POST")
	router.HandleFunc("/order/{id}", metrics.Middleware("/order/{id}", auth.Middleware(h.Get))).Methods("GET")
	router.HandleFunc("/order/{id}", metrics.Middleware("/order/{id}", auth.Middleware(h.Delete))).Methods("DELETE")
}

// Create handles POST /api/v1/order
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WarehouseID uint   `json:"warehouseId"`
		CustomerID  *uint  `json:"customerId"`
		Discount    int64  `json:"discount"`
		Note        string `json:"note"`
		Paid        int64  `json:"paid"`
		Due         *int64 `json:"due"`
		Payment     struct {
			Type string `json:"type"`
			Note string `json:"note"`
		} `json:"payment"`
		Products []struct {
			ProductID uint  `json:"productId"`
			Quantity  int   `json:"quantity"`
			Discount  int64 `json:"discount"`
		} `json:"products"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	lines := make([]command.OrderLine, 0, len(req.Products))
	for _, p := range req.Products {
		lines = append(lines, command.OrderLine{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			Discount:  p.Discount,
		})
	}

	order, err := h.createHandler.Handle(r.Context(), command.CreateOrderCommand{
		WarehouseID: req.WarehouseID,
		CustomerID:  req.CustomerID,
		Discount:    req.Discount,
		Note:        req.Note,
		Paid:        req.Paid,
		Due:         req.Due,
		Lines:       lines,
		PaymentType: req.Payment.Type,
		PaymentNote: req.Payment.Note,
	})
	if err != nil {
		if errors.Is(err, invdomain.ErrInsufficientStock) {
			metrics.InsufficientStockRejections.Inc()
			err = apperrors.InsufficientStock(err.Error())
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusCreated, order)
}

// List handles GET /api/v1/order
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.FromQuery(r.URL.Query(), sortColumns)
	if err != nil {
		web.RespondError(w, r, apperrors.InvalidContent(err.Error()))
		return
	}

	orders, total, err := h.listHandler.Handle(query.ListOrdersQuery{
		Limit:  params.Limit,
		Offset: params.Offset(),
		Order:  params.OrderClause(),
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondList(w, orders, pagination.NewMeta(params, total))
}

// Get handles GET /api/v1/order/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{ID: id})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("order not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, order)
}

// Delete handles DELETE /api/v1/order/{id}
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteOrderCommand{ID: id}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("order not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, map[string]uint{"id": id})
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, apperrors.InvalidParam("id must be a positive integer")
	}
	return uint(id), nil
}
