package service

import (
	"context"

	"bakery/pkg/domain/model"
)

type CommentService interface {
	CreateComment(ctx context.Context, subject model.Subject, productID int64, message string) (*model.Comment, error)
	ListComments(ctx context.Context, productID int64) ([]model.Comment, error)
	EditComment(ctx context.Context, subject model.Subject, productID, commentID int64, message string) (*model.Comment, error)
	DeleteComment(ctx context.Context, subject model.Subject, productID, commentID int64) error
}

func NewCommentService(
	repo model.CommentRepository,
	products model.ProductRepository,
	dispatcher EventDispatcher,
) CommentService {
	return &commentService{repo: repo, products: products, dispatcher: dispatcher}
}

type commentService struct {
	repo       model.CommentRepository
	products   model.ProductRepository
	dispatcher EventDispatcher
}

func (s *commentService) CreateComment(ctx context.Context, subject model.Subject, productID int64, message string) (*model.Comment, error) {
	if err := validateRequired("message", message); err != nil {
		return nil, err
	}
	if _, err := s.products.Find(ctx, productID); err != nil {
		return nil, err
	}

	comment := &model.Comment{Message: message, UserID: subject.ID, ProductID: productID}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.CommentPosted{
		CommentID: comment.ID,
		ProductID: productID,
		UserID:    subject.ID,
	})
	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, productID int64) ([]model.Comment, error) {
	if _, err := s.products.Find(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.FindByProduct(ctx, productID)
}

func (s *commentService) EditComment(ctx context.Context, subject model.Subject, productID, commentID int64, message string) (*model.Comment, error) {
	comment, err := s.findOnProduct(ctx, productID, commentID)
	if err != nil {
		return nil, err
	}
	if !CanEdit(subject, comment.UserID) {
		return nil, ErrNotAuthorized
	}
	if message == "" {
		return comment, nil
	}

	comment.Message = message
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, subject model.Subject, productID, commentID int64) error {
	comment, err := s.findOnProduct(ctx, productID, commentID)
	if err != nil {
		return err
	}
	if !CanDelete(subject, comment.UserID) {
		return ErrNotAuthorized
	}
	return s.repo.Delete(ctx, commentID)
}

func (s *commentService) findOnProduct(ctx context.Context, productID, commentID int64) (*model.Comment, error) {
	comment, err := s.repo.Find(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.ProductID != productID {
		return nil, model.ErrCommentNotFound
	}
	return comment, nil
}
