package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/customer/domain"
	"github.com/bizstack/backoffice/internal/customer/usecase/command"
	"github.com/bizstack/backoffice/internal/customer/usecase/query"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/auth"
	"github.com/bizstack/backoffice/pkg/metrics"
	"github.com/bizstack/backoffice/pkg/pagination"
	"github.com/bizstack/backoffice/pkg/web"
)

var sortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"phone":     "phone",
	"email":     "email",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// customerRequest is the shared create/update request body
type customerRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
}

func (req customerRequest) dateOfBirth() (*time.Time, error) {
	if req.DateOfBirth == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, apperrors.InvalidContent("dateOfBirth must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	createHandler *command.CreateCustomerHandler
	updateHandler *command.UpdateCustomerHandler
	deleteHandler *command.DeleteCustomerHandler

	getHandler  *query.GetCustomerHandler
	listHandler *query.ListCustomersHandler
}

// NewCustomerHandler creates a new customer handler (manual DI)
func NewCustomerHandler(repo domain.CustomerRepository) *CustomerHandler {
	return NewCustomerHandlerWithDI(
		command.NewCreateCustomerHandler(repo),
		command.NewUpdateCustomerHandler(repo),
		command.NewDeleteCustomerHandler(repo),
		query.NewGetCustomerHandler(repo),
		query.NewListCustomersHandler(repo),
	)
}

// NewCustomerHandlerWithDI creates a new customer handler from pre-built
// command and query handlers. Used by Wire.
func NewCustomerHandlerWithDI(
	createHandler *command.CreateCustomerHandler,
	updateHandler *command.UpdateCustomerHandler,
	deleteHandler *command.DeleteCustomerHandler,
	getHandler *query.GetCustomerHandler,
	listHandler *query.ListCustomersHandler,
) *CustomerHandler {
	return &CustomerHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers customer routes on the given router
func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/customer", metrics.Middleware("/customer", auth.Middleware(h.List))).Methods("GET")
	router.HandleFunc("/customer", metrics.Middleware("/customer", auth.Middleware(h.Create))).Methods("POST")
	router.HandleFunc("/customer/{id}", metrics.Middleware("/customer/{id}", auth.Middleware(h.Get))).Methods("GET")
	router.HandleFunc("/customer/{id}", metrics.Middleware("/customer/{id}", auth.Middleware(h.Update))).Methods("PUT")
	router.HandleFunc("/customer/{id}", metrics.Middleware("/customer/{id}", auth.Middleware(h.Delete))).Methods("DELETE")
}

// Create handles POST /api/v1/customer
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}
	dob, err := req.dateOfBirth()
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	customer, err := h.createHandler.Handle(command.CreateCustomerCommand{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Email:       req.Email,
		DateOfBirth: dob,
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusCreated, customer)
}

// List handles GET /api/v1/customer
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.FromQuery(r.URL.Query(), sortColumns)
	if err != nil {
		web.RespondError(w, r, apperrors.InvalidContent(err.Error()))
		return
	}

	customers, total, err := h.listHandler.Handle(query.ListCustomersQuery{
		Limit:  params.Limit,
		Offset: params.Offset(),
		Order:  params.OrderClause(),
		Search: params.Search,
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondList(w, customers, pagination.NewMeta(params, total))
}

// Get handles GET /api/v1/customer/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	customer, err := h.getHandler.Handle(query.GetCustomerQuery{ID: id})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("customer not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, customer)
}

// Update handles PUT /api/v1/customer/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}
	dob, err := req.dateOfBirth()
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	customer, err := h.updateHandler.Handle(command.UpdateCustomerCommand{
		ID:          id,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Email:       req.Email,
		DateOfBirth: dob,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("customer not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, customer)
}

// Delete handles DELETE /api/v1/customer/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteCustomerCommand{ID: id}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("customer not found")
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
