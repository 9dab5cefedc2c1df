package command

import (
	"github.com/bizstack/backoffice/internal/order/domain"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	ID uint
}

// DeleteOrderHandler handles order deletion
type DeleteOrderHandler struct {
	repo domain.OrderRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(repo domain.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo}
}

// Handle executes the delete order command; stock restoration and payment
// cancellation happen inside the repository transaction.
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	return h.repo.Delete(cmd.ID)
}
