// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product represents a product entity in the store.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.NullDecimal
}

// ProductFields holds the mutable part of a Product.
type ProductFields struct {
	Name        string
	Description string
	Price       decimal.NullDecimal
}

// ProductStore is an interface for product storage operations.
// Implementations keep products in insertion order.
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create assigns a fresh identifier and appends the product.
	Create(ctx context.Context, fields ProductFields) (*Product, error)

	// Update replaces every non-id field of an existing product, keeping its position.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, fields ProductFields) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error

	// Count returns the number of stored products.
	Count(ctx context.Context) int
}
