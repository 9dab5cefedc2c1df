package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/product/domain"
	"github.com/bizstack/backoffice/internal/product/usecase/command"
	"github.com/bizstack/backoffice/internal/product/usecase/query"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/auth"
	"github.com/bizstack/backoffice/pkg/metrics"
	"github.com/bizstack/backoffice/pkg/pagination"
	"github.com/bizstack/backoffice/pkg/web"
)

// sortColumns maps exposed sort keys to database columns
var sortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"barcode":   "barcode",
	"price":     "price",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	getHandler   *query.GetProductHandler
	listHandler  *query.ListProductsHandler
	statsHandler *query.GetStatsHandler
}

// NewProductHandler creates a new product handler (manual DI)
func NewProductHandler(repo domain.ProductRepository) *ProductHandler {
	return NewProductHandlerWithDI(
		command.NewCreateProductHandler(repo),
		command.NewUpdateProductHandler(repo),
		command.NewDeleteProductHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewListProductsHandler(repo),
		query.NewGetStatsHandler(repo),
	)
}

// NewProductHandlerWithDI creates a new product handler from pre-built
// command and query handlers. Used by Wire.
func NewProductHandlerWithDI(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	getHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	statsHandler *query.GetStatsHandler,
) *ProductHandler {
	return &ProductHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
		statsHandler:  statsHandler,
	}
}

// RegisterRoutes registers product routes on the given router
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/product", metrics.Middleware("/product", auth.Middleware(h.List))).Methods("GET")
	router.HandleFunc("/product", metrics.Middleware("/product", auth.Middleware(h.Create))).Methods("POST")
	router.HandleFunc("/product/{id}", metrics.Middleware("/product/{id}", auth.Middleware(h.Get))).Methods("GET")
	router.HandleFunc("/product/{id}", metrics.Middleware("/product/{id}", auth.Middleware(h.Update))).Methods("PUT")
	router.HandleFunc("/product/{id}", metrics.Middleware("/product/{id}", auth.Middleware(h.Delete))).Methods("DELETE")
}

// Stats returns the total product count for the dashboard
func (h *ProductHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle()
	if err != nil {
		web.RespondError(w, r, err)
		return
	}
	metrics.TotalProducts.Set(float64(stats.Total))
	web.RespondData(w, http.StatusOK, stats)
}

// Create handles POST /api/v1/product
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Barcode     string `json:"barcode"`
		Price       int64  `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		Barcode:     req.Barcode,
		Price:       req.Price,
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusCreated, product)
}

// List handles GET /api/v1/product
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.FromQuery(r.URL.Query(), sortColumns)
	if err != nil {
		web.RespondError(w, r, apperrors.InvalidContent(err.Error()))
		return
	}

	products, total, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{
		Limit:  params.Limit,
		Offset: params.Offset(),
		Order:  params.OrderClause(),
		Search: params.Search,
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondList(w, products, pagination.NewMeta(params, total))
}

// Get handles GET /api/v1/product/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("product not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, product)
}

// Update handles PUT /api/v1/product/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Barcode     string `json:"barcode"`
		Price       int64  `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Barcode:     req.Barcode,
		Price:       req.Price,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("product not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, product)
}

// Delete handles DELETE /api/v1/product/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("product not found")
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
