package auth

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"bakery/pkg/domain/model"
)

func NewPasswordManager(cost int) model.PasswordManager {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &passwordManager{cost: cost}
}

type passwordManager struct {
	cost int
}

func (m *passwordManager) Hash(plainTextPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), m.cost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

func (m *passwordManager) Check(hashedPassword, plainTextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainTextPassword))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "check password")
	}
	return true, nil
}
