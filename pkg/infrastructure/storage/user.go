package storage

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"bakery/pkg/domain/model"
)

const userColumns = `id, first_name, last_name, address, email, password, is_admin`

func NewUserRepository(db *sqlx.DB) model.UserRepository {
	return &userRepository{db: db}
}

type userRepository struct {
	db *sqlx.DB
}

func (r *userRepository) Find(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.WithStack(model.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (first_name, last_name, address, email, password, is_admin)
		VALUES (:first_name, :last_name, :address, :email, :password, :is_admin)`,
		user)
	if err != nil {
		return translate(err, "create user")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "create user")
	}
	user.ID = id
	return nil
}
