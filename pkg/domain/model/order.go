package model

import (
	"context"
	"errors"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderStatus string

const (
	InQueue   OrderStatus = "In-queue"
	Preparing OrderStatus = "Preparing"
	Completed OrderStatus = "Completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case InQueue, Preparing, Completed:
		return true
	}
	return false
}

// OrderQuantity is the only quantity an order can carry.
const OrderQuantity = 1

type Order struct {
	ID                 int64       `db:"id"`
	UserID             int64       `db:"user_id"`
	ProductID          int64       `db:"product_id"`
	DateOrdered        Date        `db:"date_ordered"`
	Quantity           int         `db:"quantity"`
	Status             OrderStatus `db:"status"`
	Description        string      `db:"description"`
	DeliveryPickupDate Date        `db:"delivery_pickup_date"`
}

type OrderRepository interface {
	Find(ctx context.Context, id int64) (*Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	FindByOwner(ctx context.Context, userID int64) ([]Order, error)
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id int64) error
}
