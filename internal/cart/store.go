package cart

import (
	"context"
	"errors"
)

var (
	ErrInvalidItem     = errors.New("invalid item data")
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotInCart   = errors.New("item not in cart")
)

// Line is one product/quantity pairing. A cart holds at most one line per
// ProductID.
type Line struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Store keeps each user's lines in insertion order. Get reports whether the
// user has a cart at all, which is distinct from having an empty one.
type Store interface {
	Get(ctx context.Context, userID string) ([]Line, bool, error)
	Put(ctx context.Context, userID string, lines []Line) error
}
