package service

import (
	"context"
	"errors"
	"fmt"

	"bakery/pkg/domain/model"
)

// OrderValidator checks candidate order fields. Checks run in a fixed order
// and the first failure wins.
type OrderValidator struct {
	products model.ProductRepository
}

func NewOrderValidator(products model.ProductRepository) *OrderValidator {
	return &OrderValidator{products: products}
}

// ValidateProductReference returns the referenced product or ErrProductNotFound.
func (v *OrderValidator) ValidateProductReference(ctx context.Context, productID int64) (*model.Product, error) {
	product, err := v.products.Find(ctx, productID)
	if errors.Is(err, model.ErrProductNotFound) {
		return nil, fmt.Errorf("%w with id %d", model.ErrProductNotFound, productID)
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func ValidateQuantity(q int) error {
	if q != model.OrderQuantity {
		return newValidationError("quantity", ErrInvalidQuantity, ErrInvalidQuantity.Error())
	}
	return nil
}

func ValidateStatus(s model.OrderStatus) error {
	if !s.Valid() {
		return newValidationError("status", ErrInvalidStatus,
			fmt.Sprintf("status must be one of %s, %s, %s", model.InQueue, model.Preparing, model.Completed))
	}
	return nil
}

// ValidateDeliveryDate requires candidate to be no earlier than today plus the
// preparation window and one buffer day. The past check runs first.
func ValidateDeliveryDate(candidate, today model.Date, prepDays int) error {
	if candidate.Before(today) {
		return newValidationError("delivery_pickup_date", ErrDateInPast, ErrDateInPast.Error())
	}
	minDays := prepDays + 1
	if candidate.Before(today.AddDays(minDays)) {
		tooSoon := &TooSoonError{MinDays: minDays}
		return newValidationError("delivery_pickup_date", tooSoon, tooSoon.Error())
	}
	return nil
}

func validateRequired(field, value string) error {
	if value == "" {
		return newValidationError(field, ErrRequired, fmt.Sprintf("%s is required", field))
	}
	return nil
}
