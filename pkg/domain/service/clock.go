package service

import (
	"time"

	"bakery/pkg/domain/model"
)

type Clock interface {
	Today() model.Date
}

func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

type systemClock struct {
	loc *time.Location
}

func (c systemClock) Today() model.Date {
	return model.DateOf(time.Now().In(c.loc))
}
