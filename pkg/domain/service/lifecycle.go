package service

import "bakery/pkg/domain/model"

// IsEditable reports whether an order still accepts edits. Any edit made while
// the order is In-queue may move it to Preparing or Completed; after that the
// order is frozen.
func IsEditable(order *model.Order) bool {
	switch order.Status {
	case model.Preparing, model.Completed:
		return false
	}
	return true
}

func checkEditable(order *model.Order) error {
	if !IsEditable(order) {
		return ErrOrderLocked
	}
	return nil
}
