package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/user/domain"
	"github.com/bizstack/backoffice/internal/user/usecase/command"
	"github.com/bizstack/backoffice/internal/user/usecase/query"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/auth"
	"github.com/bizstack/backoffice/pkg/metrics"
	"github.com/bizstack/backoffice/pkg/web"
)

// UserHandler handles HTTP requests for authentication and profiles
type UserHandler struct {
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	profileHandler  *query.GetProfileHandler
}

// NewUserHandler creates a new user handler (manual DI)
func NewUserHandler(repo domain.UserRepository) *UserHandler {
	return NewUserHandlerWithDI(
		command.NewRegisterUserHandler(repo),
		command.NewLoginUserHandler(repo),
		query.NewGetProfileHandler(repo),
	)
}

// NewUserHandlerWithDI creates a new user handler from pre-built
// command and query handlers. Used by Wire.
func NewUserHandlerWithDI(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	profileHandler *query.GetProfileHandler,
) *UserHandler {
	return &UserHandler{
		registerHandler: registerHandler,
		loginHandler:    loginHandler,
		profileHandler:  profileHandler,
	}
}

// RegisterRoutes registers auth routes on the given router
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/register", metrics.Middleware("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", metrics.Middleware("/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/auth/profile", metrics.Middleware("/auth/profile", auth.Middleware(h.Profile))).Methods("GET")
}

// Register handles POST /api/v1/auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"fullName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	user, err := h.registerHandler.Handle(command.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperrors.InvalidContent("invalid request body"))
		return
	}

	result, err := h.loginHandler.Handle(command.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, result)
}

// Profile handles GET /api/v1/auth/profile
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		web.RespondError(w, r, apperrors.Unauthorized("missing authentication context"))
		return
	}

	user, err := h.profileHandler.Handle(query.GetProfileQuery{UserID: userID})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperrors.NotfoundData("user not found")
		}
		web.RespondError(w, r, err)
		return
	}

	web.RespondData(w, http.StatusOK, user)
}
