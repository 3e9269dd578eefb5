package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/abgdnv/minicatalog/internal/errors"
	"github.com/abgdnv/minicatalog/internal/idgen"
)

// maxIDAttempts bounds how many times Create regenerates an identifier that collides
// with a live product.
const maxIDAttempts = 5

// inMemory implements ProductStore using an ordered slice.
// All lookups are linear scans.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
	ids      idgen.Generator
}

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore(ids idgen.Generator) ProductStore {
	return &inMemory{
		products: make([]Product, 0),
		ids:      ids,
	}
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// FindAll retrieves all products.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.products), nil
}

// Create creates a new product and returns it.
func (s *inMemory) Create(_ context.Context, fields ProductFields) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID()
	if err != nil {
		return nil, err
	}
	product := Product{
		ID:          id,
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
	}
	s.products = append(s.products, product)

	return &product, nil
}

// Update replaces the product with the given ID in place.
func (s *inMemory) Update(_ context.Context, id string, fields ProductFields) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	product := Product{
		ID:          s.products[i].ID,
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
	}
	s.products[i] = product

	return &product, nil
}

// DeleteByID deletes a product by its ID.
func (s *inMemory) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errors.ErrProductNotFound
	}
	s.products = slices.Delete(s.products, i, i+1)
	return nil
}

// Count returns the number of stored products.
func (s *inMemory) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.products)
}

// indexOf returns the position of the product with the given ID or -1.
// Callers must hold the lock.
func (s *inMemory) indexOf(id string) int {
	return slices.IndexFunc(s.products, func(p Product) bool {
		return p.ID == id
	})
}

// nextID returns an identifier not used by any live product. Callers must hold the write lock.
func (s *inMemory) nextID() (string, error) {
	for range maxIDAttempts {
		id, err := s.ids.Generate()
		if err != nil {
			return "", err
		}
		if s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("no unique id after %d attempts", maxIDAttempts)
}
