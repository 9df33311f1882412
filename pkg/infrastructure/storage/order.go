package storage

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"bakery/pkg/domain/model"
)

const orderColumns = `id, user_id, product_id, date_ordered, quantity, status, description, delivery_pickup_date`

func NewOrderRepository(db *sqlx.DB) model.OrderRepository {
	return &orderRepository{db: db}
}

type orderRepository struct {
	db *sqlx.DB
}

func (r *orderRepository) Find(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.GetContext(ctx, &order, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.WithStack(model.ErrOrderNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "find order")
	}
	return &order, nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.db.SelectContext(ctx, &orders, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
	return orders, errors.Wrap(err, "list orders")
}

func (r *orderRepository) FindByOwner(ctx context.Context, userID int64) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.db.SelectContext(ctx, &orders, `SELECT `+orderColumns+` FROM orders WHERE user_id = ? ORDER BY id`, userID)
	return orders, errors.Wrap(err, "list orders by owner")
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO orders (user_id, product_id, date_ordered, quantity, status, description, delivery_pickup_date)
		VALUES (:user_id, :product_id, :date_ordered, :quantity, :status, :description, :delivery_pickup_date)`,
		order)
	if err != nil {
		return translate(err, "create order")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "create order")
	}
	order.ID = id
	return nil
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE orders
		SET product_id = :product_id, quantity = :quantity, status = :status,
		    description = :description, delivery_pickup_date = :delivery_pickup_date
		WHERE id = :id`,
		order)
	if err != nil {
		return translate(err, "update order")
	}
	return expectAffected(res, model.ErrOrderNotFound)
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return translate(err, "delete order")
	}
	return expectAffected(res, model.ErrOrderNotFound)
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if n == 0 {
		return errors.WithStack(notFound)
	}
	return nil
}
