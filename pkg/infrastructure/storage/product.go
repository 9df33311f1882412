package storage

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"bakery/pkg/domain/model"
)

const productColumns = `id, name, description, price_cents, prep_days, user_id`

func NewProductRepository(db *sqlx.DB) model.ProductRepository {
	return &productRepository{db: db}
}

type productRepository struct {
	db *sqlx.DB
}

func (r *productRepository) Find(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.GetContext(ctx, &product, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.WithStack(model.ErrProductNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}
	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.SelectContext(ctx, &products, `SELECT `+productColumns+` FROM products ORDER BY id`)
	return products, errors.Wrap(err, "list products")
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO products (name, description, price_cents, prep_days, user_id)
		VALUES (:name, :description, :price_cents, :prep_days, :user_id)`,
		product)
	if err != nil {
		return translate(err, "create product")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "create product")
	}
	product.ID = id
	return nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE products
		SET name = :name, description = :description, price_cents = :price_cents, prep_days = :prep_days
		WHERE id = :id`,
		product)
	if err != nil {
		return translate(err, "update product")
	}
	return expectAffected(res, model.ErrProductNotFound)
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return translate(err, "delete product")
	}
	return expectAffected(res, model.ErrProductNotFound)
}
