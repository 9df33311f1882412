package model

import (
	"context"
	"errors"
)

var ErrCommentNotFound = errors.New("comment not found")

type Comment struct {
	ID        int64  `db:"id"`
	Message   string `db:"message"`
	UserID    int64  `db:"user_id"`
	ProductID int64  `db:"product_id"`
}

type CommentRepository interface {
	Find(ctx context.Context, id int64) (*Comment, error)
	FindByProduct(ctx context.Context, productID int64) ([]Comment, error)
	Create(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id int64) error
}
