package query

import (
	"github.com/bizstack/backoffice/internal/user/domain"
)

// GetProfileQuery retrieves the authenticated user's profile
type GetProfileQuery struct {
	UserID uint
}

// GetProfileHandler handles profile queries
type GetProfileHandler struct {
	repo domain.UserRepository
}

// NewGetProfileHandler creates a new get profile handler
func NewGetProfileHandler(repo domain.UserRepository) *GetProfileHandler {
	return &GetProfileHandler{repo: repo}
}

// Handle executes the profile query
func (h *GetProfileHandler) Handle(q GetProfileQuery) (*domain.User, error) {
	return h.repo.FindByID(q.UserID)
}
