package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/payment/domain"
	"github.com/bizstack/backoffice/internal/payment/usecase/query"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/auth"
	"github.com/bizstack/backoffice/pkg/metrics"
	"github.com/bizstack/backoffice/pkg/pagination"
	"github.com/bizstack/backoffice/pkg/web"
)

var sortColumns = map[string]string{
	"id":        "id",
	"amount":    "amount",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// PaymentHandler handles HTTP requests for payments. Payments are
// written by the order workflow; this surface is read-only.
type PaymentHandler struct {
	getHandler  *query.GetPaymentHandler
	listHandler *query.ListPaymentsHandler
}

// NewPaymentHandler creates a new payment handler (manual DI)
func NewPaymentHandler(repo domain.PaymentRepository) *PaymentHandler {
	return NewPaymentHandlerWithDI(
		query.NewGetPaymentHandler(repo),
		query.NewListPaymentsHandler(repo),
	)
}

// NewPaymentHandlerWithDI creates a new payment handler from pre-built
// query handlers. Used by Wire.
func NewPaymentHandlerWithDI(
	getHandler *query.GetPaymentHandler,
	listHandler *query.ListPaymentsHandler,
) *PaymentHandler {
	return &PaymentHandler{
		getHandler:  getHandler,
		listHandler: listHandler,
	}
}

// RegisterRoutes registers payment routes on the given router
func (h *PaymentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/payment", metrics.Middleware("/payment", auth.Middleware(h.List))).Methods("GET")
	router.HandleFunc("/payment/{id}", metrics.Middleware("/payment/{id}", auth.Middleware(h.Get))).Methods("GET")
}

// List handles GET /api/v1/payment
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.FromQuery(r.URL.Query(), sortColumns)
	if err != nil {
		web.RespondError(w, r, apperrors.InvalidContent(err.Error()))
		return
	}

	payments, total, err := h.listHandler.Handle(query.ListPaymentsQuery{
		Limit:  params.Limit,
		Offset: params.Offset(),
		Order:  params.OrderClause(),
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondList(w, payments, pagination.NewMeta(params, total))
}

// Get handles GET /api/v1/payment/{id}
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		web.RespondError(w, r, apperrors.InvalidParam("id must be a positive integer"))
		return
	}

	payment, err := h.getHandler.Handle(query.GetPaymentQuery{ID: uint(id)})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("payment not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, payment)
}
