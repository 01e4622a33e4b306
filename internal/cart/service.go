package cart

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"StoreFront/internal/catalog"
)

// ProductReader resolves product ids against the catalog.
type ProductReader interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}

// Item is a line as submitted by a client. Nil fields were absent (or null)
// in the request.
type Item struct {
	ProductID *string `json:"product_id"`
	Quantity  *int    `json:"quantity"`
}

func (it Item) validate() (Line, error) {
	if it.ProductID == nil || it.Quantity == nil {
		return Line{}, ErrInvalidItem
	}
	return Line{ProductID: *it.ProductID, Quantity: *it.Quantity}, nil
}

// Service implements the cart state machine:
//
//	no cart --Add--> populated
//	no cart --Clear--> empty
//	empty/populated --Add/Replace/RemoveItem/Clear--> empty/populated
//
// Replace and RemoveItem on a user without a cart fail with ErrCartNotFound.
type Service struct {
	Store    Store
	Products ProductReader
	Locker   Locker
	Metrics  *Metrics
}

func (s *Service) Get(ctx context.Context, userID string) ([]Line, error) {
	lines, _, err := s.Store.Get(ctx, userID)
	s.Metrics.observe(opGet, err)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []Line{}
	}
	return lines, nil
}

// Add merges item into the cart: an existing line for the product has the
// quantity added to it, otherwise a new line is appended.
func (s *Service) Add(ctx context.Context, userID string, item Item) (lines []Line, err error) {
	defer func() { s.Metrics.observe(opAdd, err) }()

	add, err := item.validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.Products.Get(ctx, add.ProductID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("lookup product %q: %w", add.ProductID, err)
	}

	defer s.lock(userID)()

	lines, _, err = s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if i := indexOf(lines, add.ProductID); i >= 0 {
		lines[i].Quantity += add.Quantity
	} else {
		lines = append(lines, add)
	}

	if err := s.Store.Put(ctx, userID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Replace overwrites the quantity of an existing line.
func (s *Service) Replace(ctx context.Context, userID string, item Item) (lines []Line, err error) {
	defer func() { s.Metrics.observe(opReplace, err) }()

	set, err := item.validate()
	if err != nil {
		return nil, err
	}

	defer s.lock(userID)()

	lines, ok, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCartNotFound
	}

	i := indexOf(lines, set.ProductID)
	if i < 0 {
		return nil, ErrItemNotInCart
	}
	lines[i].Quantity = set.Quantity

	if err := s.Store.Put(ctx, userID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveItem drops every line for productID. The cart must already exist,
// even though removing from a missing cart would leave the same empty
// result.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (lines []Line, err error) {
	defer func() { s.Metrics.observe(opRemove, err) }()
	defer s.lock(userID)()

	lines, ok, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCartNotFound
	}

	lines = slices.DeleteFunc(lines, func(l Line) bool { return l.ProductID == productID })

	if err := s.Store.Put(ctx, userID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Clear empties the cart, creating an empty one if the user had none.
func (s *Service) Clear(ctx context.Context, userID string) (err error) {
	defer func() { s.Metrics.observe(opClear, err) }()
	defer s.lock(userID)()

	return s.Store.Put(ctx, userID, []Line{})
}

func (s *Service) lock(userID string) func() {
	if s.Locker == nil {
		return func() {}
	}
	return s.Locker.Lock(userID)
}

func indexOf(lines []Line, productID string) int {
	return slices.IndexFunc(lines, func(l Line) bool { return l.ProductID == productID })
}
