package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/warehouse/domain"
	"github.com/bizstack/backoffice/internal/warehouse/usecase/command"
	"github.com/bizstack/backoffice/internal/warehouse/usecase/query"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/auth"
	"github.com/bizstack/backoffice/pkg/metrics"
	"github.com/bizstack/backoffice/pkg/pagination"
	"github.com/bizstack/backoffice/pkg/web"
)

var sortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// WarehouseHandler handles HTTP requests for warehouses
type WarehouseHandler struct {
	createHandler *command.CreateWarehouseHandler
	updateHandler *command.UpdateWarehouseHandler
	deleteHandler *command.DeleteWarehouseHandler

	getHandler  *query.GetWarehouseHandler
	listHandler *query.ListWarehousesHandler
}

// NewWarehouseHandler creates a new warehouse handler (manual DI)
func NewWarehouseHandler(repo domain.WarehouseRepository) *WarehouseHandler {
	return NewWarehouseHandlerWithDI(
		command.NewCreateWarehouseHandler(repo),
		command.NewUpdateWarehouseHandler(repo),
		command.NewDeleteWarehouseHandler(repo),
		query.NewGetWarehouseHandler(repo),
		query.NewListWarehousesHandler(repo),
	)
}

// NewWarehouseHandlerWithDI creates a new warehouse handler from pre-built
// command and query handlers. Used by Wire.
func NewWarehouseHandlerWithDI(
	createHandler *command.CreateWarehouseHandler,
	updateHandler *command.UpdateWarehouseHandler,
	deleteHandler *command.DeleteWarehouseHandler,
	getHandler *query.GetWarehouseHandler,
	listHandler *query.ListWarehousesHandler,
) *WarehouseHandler {
	return &WarehouseHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers warehouse routes on the given router
func (h *WarehouseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/warehouse", metrics.Middleware("/warehouse", auth.Middleware(h.List))).Methods("GET")
	router.HandleFunc("/warehouse", metrics.Middleware("/warehouse", auth.Middleware(h.Create))).Methods("POST")
	router.HandleFunc("/warehouse/{id}", metrics.Middleware("/warehouse/{id}", auth.Middleware(h.Get))).Methods("GET")
	router.HandleFunc("/warehouse/{id}", metrics.Middleware("/warehouse/{id}", auth.Middleware(h.Update))).Methods("PUT")
	router.HandleFunc("/warehouse/{id}", metrics.Middleware("/warehouse/{id}", auth.Middleware(h.Delete))).Methods("DELETE")
}

// Create handles POST /api/v1/warehouse
func (h *WarehouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	warehouse, err := h.createHandler.Handle(command.CreateWarehouseCommand{Name: req.Name})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusCreated, warehouse)
}

// List handles GET /api/v1/warehouse
func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.FromQuery(r.URL.Query(), sortColumns)
	if err != nil {
		web.RespondError(w, r, apperrors.InvalidContent(err.Error()))
		return
	}

	warehouses, total, err := h.listHandler.Handle(query.ListWarehousesQuery{
		Limit:  params.Limit,
		Offset: params.Offset(),
		Order:  params.OrderClause(),
		Search: params.Search,
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondList(w, warehouses, pagination.NewMeta(params, total))
}

// Get handles GET /api/v1/warehouse/{id}
func (h *WarehouseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	warehouse, err := h.getHandler.Handle(query.GetWarehouseQuery{ID: id})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("warehouse not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, warehouse)
}

// Update handles PUT /api/v1/warehouse/{id}
func (h *WarehouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	warehouse, err := h.updateHandler.Handle(command.UpdateWarehouseCommand{ID: id, Name: req.Name})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("warehouse not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, warehouse)
}

// Delete handles DELETE /api/v1/warehouse/{id}
func (h *WarehouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteWarehouseCommand{ID: id}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("warehouse not found")
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
