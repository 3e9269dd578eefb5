// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abgdnv/minicatalog/internal/store"
	"github.com/abgdnv/minicatalog/pkg/messaging"
	"github.com/abgdnv/minicatalog/pkg/messaging/events"
	"github.com/shopspring/decimal"
)

func init() {
	// prices are rendered as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*ProductDto, error)

	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// Create adds a new product to the system.
	Create(ctx context.Context, product ProductFieldsDto) (*ProductDto, error)

	// Update replaces the fields of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, product ProductFieldsDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	publisher  messaging.Publisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new instance of ProductService with the provided repository.
// Lifecycle events go to publisher; publish failures are logged and never returned.
func NewService(repo store.ProductStore, publisher messaging.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		publisher:  publisher,
		logger:     logger.With("component", "service"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ProductFieldsDto is the request body for create and update.
type ProductFieldsDto struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id string) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}

	return toDto(product), nil
}

// FindAll retrieves a list of all products and returns them as ProductDTOs.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}

	return productDTOs, nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *Service) Create(ctx context.Context, product ProductFieldsDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, toFields(product))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.publish(ctx, events.ProductCreatedEvent{Product: toSnapshot(p), OccurredAt: s.now()})
	return toDto(p), nil
}

// Update replaces the fields of a product and returns the updated product as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) Update(ctx context.Context, id string, product ProductFieldsDto) (*ProductDto, error) {
	updated, err := s.repository.Update(ctx, id, toFields(product))
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}

	s.publish(ctx, events.ProductUpdatedEvent{Product: toSnapshot(updated), OccurredAt: s.now()})
	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %s: %w", id, err)
	}

	s.publish(ctx, events.ProductDeletedEvent{ProductID: id, OccurredAt: s.now()})
	return nil
}

func (s *Service) publish(ctx context.Context, event messaging.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish event", "subject", event.Subject(), "error", err)
	}
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	}
}

func toFields(product ProductFieldsDto) store.ProductFields {
	return store.ProductFields{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	}
}

func toSnapshot(product *store.Product) events.ProductSnapshot {
	return events.ProductSnapshot{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	}
}
