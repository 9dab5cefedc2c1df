package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers the Swagger UI route
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account with the default role
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,password=string,fullName=string} true "Registration data"
// @Success 201 {object} object{data=object}
// @Failure 400 {object} object{code=string,message=string}
// @Router /api/v1/auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary Log in
// @Description Exchange credentials for a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Credentials"
// @Success 200 {object} object{data=object{token=string,user=object}}
// @Failure 401 {object} object{code=string,message=string}
// @Router /api/v1/auth/login [post]
func (h *UserHandler) LoginDoc() {}

// Profile godoc
// @Summary Current user profile
// @Description Return the profile of the authenticated user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{data=object}
// @Failure 401 {object} object{code=string,message=string}
// @Router /api/v1/auth/profile [get]
func (h *UserHandler) ProfileDoc() {}
