package catalog

import (
	"context"
	"slices"
)

// MemStore holds the catalog in load order. It is never written after
// construction, so reads need no locking.
type MemStore struct {
	products []Product
}

func NewMemStore(products ...Product) *MemStore {
	return &MemStore{products: slices.Clone(products)}
}

func (s *MemStore) Ping(context.Context) error { return nil }

func (s *MemStore) Len() int { return len(s.products) }

func (s *MemStore) List(_ context.Context, f Filter) ([]Product, error) {
	return filterProducts(s.products, f), nil
}

func (s *MemStore) Get(_ context.Context, id string) (Product, error) {
	p, ok := findProduct(s.products, id)
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *MemStore) Related(_ context.Context, category, excludeID string) ([]Product, error) {
	if category == "" {
		return nil, ErrCategoryRequired
	}
	return relatedProducts(s.products, category, excludeID), nil
}
