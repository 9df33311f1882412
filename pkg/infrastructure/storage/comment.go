package storage

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"bakery/pkg/domain/model"
)

func NewCommentRepository(db *sqlx.DB) model.CommentRepository {
	return &commentRepository{db: db}
}

type commentRepository struct {
	db *sqlx.DB
}

func (r *commentRepository) Find(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, `SELECT id, message, user_id, product_id FROM comments WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.WithStack(model.ErrCommentNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "find comment")
	}
	return &comment, nil
}

func (r *commentRepository) FindByProduct(ctx context.Context, productID int64) ([]model.Comment, error) {
	comments := []model.Comment{}
	err := r.db.SelectContext(ctx, &comments,
		`SELECT id, message, user_id, product_id FROM comments WHERE product_id = ? ORDER BY id`, productID)
	return comments, errors.Wrap(err, "list comments")
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO comments (message, user_id, product_id) VALUES (:message, :user_id, :product_id)`,
		comment)
	if err != nil {
		return translate(err, "create comment")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "create comment")
	}
	comment.ID = id
	return nil
}

func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	res, err := r.db.ExecContext(ctx, `UPDATE comments SET message = ? WHERE id = ?`, comment.Message, comment.ID)
	if err != nil {
		return translate(err, "update comment")
	}
	return expectAffected(res, model.ErrCommentNotFound)
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return translate(err, "delete comment")
	}
	return expectAffected(res, model.ErrCommentNotFound)
}
