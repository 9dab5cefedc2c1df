package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	invdomain "github.com/bizstack/backoffice/internal/inventory/domain"
	"github.com/bizstack/backoffice/internal/receipt/usecase/command"
	"github.com/bizstack/backoffice/internal/receipt/usecase/query"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/auth"
	"github.com/bizstack/backoffice/pkg/metrics"
	"github.com/bizstack/backoffice/pkg/pagination"
	"github.com/bizstack/backoffice/pkg/web"
)

var sortColumns = map[string]string{
	"id":        "id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// receiptLineRequest is one line of a receipt create/update body
type receiptLineRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

func toReceiptLines(reqs []receiptLineRequest) []command.ReceiptLine {
	lines := make([]command.ReceiptLine, 0, len(reqs))
	for _, req := range reqs {
		lines = append(lines, command.ReceiptLine{ProductID: req.ProductID, Quantity: req.Quantity})
	}
	return lines
}

// ReceiptHandler handles HTTP requests for goods receipts
type ReceiptHandler struct {
	createHandler *command.CreateReceiptHandler
	updateHandler *command.UpdateReceiptHandler
	deleteHandler *command.DeleteReceiptHandler

	getHandler  *query.GetReceiptHandler
	listHandler *query.ListReceiptsHandler
}

// NewReceiptHandler creates a new goods-receipt handler from pre-built
// command and query handlers. Also used by Wire.
func NewReceiptHandler(
	createHandler *command.CreateReceiptHandler,
	updateHandler *command.UpdateReceiptHandler,
	deleteHandler *command.DeleteReceiptHandler,
	getHandler *query.GetReceiptHandler,
	listHandler *query.ListReceiptsHandler,
) *ReceiptHandler {
	return &ReceiptHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers goods-receipt routes on the given router
func (h *ReceiptHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/goods-receipt", metrics.Middleware("/goods-receipt", auth.Middleware(h.List))).Methods("GET")
	router.HandleFunc("/goods-receipt", metrics.Middleware("/goods-receipt", auth.Middleware(h.Create))).Methods("POST")
	router.HandleFunc("/goods-receipt/{id}", metrics.Middleware("/goods-receipt/{id}", auth.Middleware(h.Get))).Methods("GET")
	router.HandleFunc("/goods-receipt/{id}", metrics.Middleware("/goods-receipt/{id}", auth.Middleware(h.Update))).Methods("PUT")
	router.HandleFunc("/goods-receipt/{id}", metrics.Middleware("/goods-receipt/{id}", auth.Middleware(h.Delete))).Methods("DELETE")
}

// Create handles POST /api/v1/goods-receipt
func (h *ReceiptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WarehouseID uint                 `json:"warehouseId"`
		Products    []receiptLineRequest `json:"products"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	receipt, err := h.createHandler.Handle(r.Context(), command.CreateReceiptCommand{
		WarehouseID: req.WarehouseID,
		Lines:       toReceiptLines(req.Products),
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusCreated, receipt)
}

// List handles GET /api/v1/goods-receipt
func (h *ReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.FromQuery(r.URL.Query(), sortColumns)
	if err != nil {
		web.RespondError(w, r, apperrors.InvalidContent(err.Error()))
		return
	}

	receipts, total, err := h.listHandler.Handle(query.ListReceiptsQuery{
		Limit:  params.Limit,
		Offset: params.Offset(),
		Order:  params.OrderClause(),
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondList(w, receipts, pagination.NewMeta(params, total))
}

// Get handles GET /api/v1/goods-receipt/{id}
func (h *ReceiptHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	receipt, err := h.getHandler.Handle(query.GetReceiptQuery{ID: id})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("goods receipt not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, receipt)
}

// Update handles PUT /api/v1/goods-receipt/{id}. The stored line set is
// replaced and stock is reconciled by per-product delta.
func (h *ReceiptHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	var req struct {
		Products []receiptLineRequest `json:"products"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	receipt, err := h.updateHandler.Handle(command.UpdateReceiptCommand{
		ID:    id,
		Lines: toReceiptLines(req.Products),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("goods receipt not found")
		}
		if errors.Is(err, invdomain.ErrInsufficientStock) {
			metrics.InsufficientStockRejections.Inc()
			err = apperrors.InsufficientStock(err.Error())
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, receipt)
}

// Delete handles DELETE /api/v1/goods-receipt/{id}. The received
// quantities are decremented back out of stock; the delete is rejected
// when that stock has already been consumed.
func (h *ReceiptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteReceiptCommand{ID: id}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("goods receipt not found")
		}
		if errors.Is(err, invdomain.ErrInsufficientStock) {
			metrics.InsufficientStockRejections.Inc()
			err = apperrors.InsufficientStock(err.Error())
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
