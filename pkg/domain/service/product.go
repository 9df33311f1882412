package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"bakery/pkg/domain/model"
)

type ProductDraft struct {
	Name        string
	Description string
	PriceCents  int64
	PrepDays    int
}

// ProductPatch is a partial update. Nil fields keep their stored values.
type ProductPatch struct {
	Name        *string
	Description *string
	PriceCents  *int64
	PrepDays    *int
}

type ProductService interface {
	CreateProduct(ctx context.Context, subject model.Subject, draft ProductDraft) (*model.Product, error)
	EditProduct(ctx context.Context, subject model.Subject, productID int64, patch ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, subject model.Subject, productID int64) error
	GetProduct(ctx context.Context, productID int64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}

func NewProductService(repo model.ProductRepository, dispatcher EventDispatcher) ProductService {
	return &productService{repo: repo, dispatcher: dispatcher}
}

type productService struct {
	repo       model.ProductRepository
	dispatcher EventDispatcher
}

func (s *productService) CreateProduct(ctx context.Context, subject model.Subject, draft ProductDraft) (*model.Product, error) {
	if !subject.IsAdmin {
		return nil, ErrNotAuthorized
	}

	product := &model.Product{
		Name:        draft.Name,
		Description: draft.Description,
		PriceCents:  draft.PriceCents,
		PrepDays:    draft.PrepDays,
		UserID:      &subject.ID,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.ProductCreated{ProductID: product.ID, Name: product.Name})
	return product, nil
}

func (s *productService) EditProduct(ctx context.Context, subject model.Subject, productID int64, patch ProductPatch) (*model.Product, error) {
	if !subject.IsAdmin {
		return nil, ErrNotAuthorized
	}

	product, err := s.repo.Find(ctx, productID)
	if err != nil {
		return nil, err
	}

	oldPrice := product.PriceCents
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.PriceCents != nil {
		product.PriceCents = *patch.PriceCents
	}
	if patch.PrepDays != nil {
		product.PrepDays = *patch.PrepDays
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	if product.PriceCents != oldPrice {
		_ = s.dispatcher.Dispatch(model.ProductPriceChanged{
			ProductID:     productID,
			OldPriceCents: oldPrice,
			NewPriceCents: product.PriceCents,
		})
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, subject model.Subject, productID int64) error {
	if !subject.IsAdmin {
		return ErrNotAuthorized
	}
	if _, err := s.repo.Find(ctx, productID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, productID); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ProductDeleted{ProductID: productID})
	return nil
}

func (s *productService) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	return s.repo.Find(ctx, productID)
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.FindAll(ctx)
}

func validateProduct(p *model.Product) error {
	if utf8.RuneCountInString(p.Name) < model.MinProductNameLength {
		return newValidationError("name", ErrOutOfRange,
			fmt.Sprintf("name must be at least %d characters long", model.MinProductNameLength))
	}
	if err := validateRequired("description", p.Description); err != nil {
		return err
	}
	if p.PriceCents < model.MinPriceCents || p.PriceCents > model.MaxPriceCents {
		return newValidationError("price", ErrOutOfRange,
			fmt.Sprintf("price must be between %.2f and %.2f",
				float64(model.MinPriceCents)/100, float64(model.MaxPriceCents)/100))
	}
	if p.PrepDays < 0 || p.PrepDays > model.MaxPrepDays {
		return newValidationError("prep_days", ErrOutOfRange,
			fmt.Sprintf("prep_days must be between 0 and %d", model.MaxPrepDays))
	}
	return nil
}
