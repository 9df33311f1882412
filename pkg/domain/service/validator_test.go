package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/pkg/domain/model"
)

func TestValidateDeliveryDate(t *testing.T) {
	today := model.NewDate(2024, time.January, 10)

	for prepDays := 0; prepDays <= model.MaxPrepDays; prepDays++ {
		earliest := today.AddDays(prepDays + 1)

		assert.NoError(t, ValidateDeliveryDate(earliest, today, prepDays))
		assert.NoError(t, ValidateDeliveryDate(earliest.AddDays(30), today, prepDays))

		err := ValidateDeliveryDate(earliest.AddDays(-1), today, prepDays)
		assert.ErrorIs(t, err, ErrTooSoon)
		var tooSoon *TooSoonError
		require.True(t, errors.As(err, &tooSoon))
		assert.Equal(t, prepDays+1, tooSoon.MinDays)

		err = ValidateDeliveryDate(today.AddDays(-1), today, prepDays)
		assert.ErrorIs(t, err, ErrDateInPast)
		assert.NotErrorIs(t, err, ErrTooSoon)
	}
}

func TestValidateDeliveryDateAcrossMonthEnd(t *testing.T) {
	today := model.NewDate(2024, time.February, 27)

	assert.ErrorIs(t, ValidateDeliveryDate(model.NewDate(2024, time.February, 29), today, 2), ErrTooSoon)
	assert.NoError(t, ValidateDeliveryDate(model.NewDate(2024, time.March, 1), today, 2))
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(1))
	for _, q := range []int{-1, 0, 2, 100} {
		err := ValidateQuantity(q)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.ErrorIs(t, err, ErrValidationFailed)
	}
}

func TestValidateStatus(t *testing.T) {
	for _, s := range []model.OrderStatus{model.InQueue, model.Preparing, model.Completed} {
		assert.NoError(t, ValidateStatus(s))
	}

	err := ValidateStatus("in-queue")
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "status", validationErr.Field)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestLifecycleAndGuard(t *testing.T) {
	order := &model.Order{UserID: 3, Status: model.InQueue}
	assert.True(t, IsEditable(order))
	assert.NoError(t, checkEditable(order))

	for _, s := range []model.OrderStatus{model.Preparing, model.Completed} {
		order.Status = s
		assert.False(t, IsEditable(order))
		assert.ErrorIs(t, checkEditable(order), ErrOrderLocked)
	}

	owner := model.Subject{ID: 3}
	other := model.Subject{ID: 4}
	otherAdmin := model.Subject{ID: 4, IsAdmin: true}

	assert.True(t, CanView(owner, order.UserID))
	assert.True(t, CanEdit(owner, order.UserID))
	assert.True(t, CanDelete(owner, order.UserID))
	assert.False(t, CanView(other, order.UserID))
	assert.False(t, CanEdit(other, order.UserID))
	assert.False(t, CanDelete(other, order.UserID))
	assert.True(t, CanView(otherAdmin, order.UserID))
	assert.True(t, CanDelete(otherAdmin, order.UserID))
}
