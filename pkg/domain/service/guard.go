package service

import "bakery/pkg/domain/model"

func CanView(subject model.Subject, ownerID int64) bool {
	return subject.IsAdmin || subject.Owns(ownerID)
}

// CanEdit does not consider the order lifecycle; see IsEditable.
func CanEdit(subject model.Subject, ownerID int64) bool {
	return CanView(subject, ownerID)
}

func CanDelete(subject model.Subject, ownerID int64) bool {
	return CanView(subject, ownerID)
}
