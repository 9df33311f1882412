package model

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID             int64  `db:"id"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	Address        string `db:"address"`
	Email          string `db:"email"`
	HashedPassword string `db:"password"`
	IsAdmin        bool   `db:"is_admin"`
}

type UserRepository interface {
	Find(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

type PasswordManager interface {
	Hash(plainTextPassword string) (string, error)
	Check(hashedPassword, plainTextPassword string) (bool, error)
}

// Subject is the authenticated actor of a request.
type Subject struct {
	ID      int64
	IsAdmin bool
}

func (s Subject) Owns(ownerID int64) bool {
	return s.ID == ownerID
}
