package model

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

const (
	MinProductNameLength = 4
	MinPriceCents        = 1500
	MaxPriceCents        = 50000
	MaxPrepDays          = 5
)

type Product struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	PriceCents  int64  `db:"price_cents"`
	PrepDays    int    `db:"prep_days"`
	UserID      *int64 `db:"user_id"`
}

type ProductRepository interface {
	Find(ctx context.Context, id int64) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	// Delete removes the product together with its orders and comments.
	Delete(ctx context.Context, id int64) error
}
