package command

import (
	"context"
	"fmt"

	"github.com/bizstack/backoffice/internal/product/domain"
	"github.com/bizstack/backoffice/pkg/apperrors"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name        string
	Description string
	Barcode     string
	Price       int64
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// tracedCreator is satisfied by the tracing repository decorator
type tracedCreator interface {
	CreateWithContext(ctx context.Context, product *domain.Product) error
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, apperrors.InvalidContent("product name is required")
	}
	if cmd.Price < 0 {
		return nil, apperrors.InvalidContent("price cannot be negative")
	}

	product := &domain.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		Barcode:     cmd.Barcode,
		Price:       cmd.Price,
	}

	var err error
	if traced, ok := h.repo.(tracedCreator); ok {
		err = traced.CreateWithContext(ctx, product)
	} else {
		err = h.repo.Create(product)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
