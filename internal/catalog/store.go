package catalog

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryRequired = errors.New("category required")
)

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	IsNew         *bool    `json:"isNew,omitempty"`
	Discount      *float64 `json:"discount,omitempty"`
}

type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context, f Filter) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Related(ctx context.Context, category, excludeID string) ([]Product, error)
}
