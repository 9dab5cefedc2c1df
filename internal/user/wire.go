//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/user/delivery/http"
	"github.com/bizstack/backoffice/internal/user/domain"
	"github.com/bizstack/backoffice/internal/user/repository"
	"github.com/bizstack/backoffice/internal/user/usecase/command"
	"github.com/bizstack/backoffice/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

func ProvideRegisterUserHandler(repo domain.UserRepository) *command.RegisterUserHandler {
	return command.NewRegisterUserHandler(repo)
}

func ProvideLoginUserHandler(repo domain.UserRepository) *command.LoginUserHandler {
	return command.NewLoginUserHandler(repo)
}

func ProvideGetProfileHandler(repo domain.UserRepository) *query.GetProfileHandler {
	return query.NewGetProfileHandler(repo)
}

var HandlerSet = wire.NewSet(
	ProvideUserRepository,
	ProvideRegisterUserHandler,
	ProvideLoginUserHandler,
	ProvideGetProfileHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.UserHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewUserHandlerWithDI,
	)
	return nil, nil
}
