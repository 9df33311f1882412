package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"bakery/pkg/domain/model"
	"bakery/pkg/infrastructure/auth"
	"bakery/pkg/infrastructure/storage"
)

type seedUser struct {
	user     model.User
	password string
}

var seedUsers = []seedUser{
	{
		user:     model.User{FirstName: "Scott", LastName: "Taylor", Email: "admin@mail.com", IsAdmin: true},
		password: "password123",
	},
	{
		user:     model.User{FirstName: "Jane", LastName: "Doe", Address: "1 John Street, Vic, 3999", Email: "janedoe@mail.com"},
		password: "jane123",
	},
	{
		user:     model.User{FirstName: "John", LastName: "Smith", Address: "1 Jane Street, Vic, 3999", Email: "johnsmith@mail.com"},
		password: "john123",
	},
}

var seedProducts = []model.Product{
	{Name: "Sourdough loaf", Description: "Slow fermented country loaf", PriceCents: 1800, PrepDays: 1},
	{Name: "Birthday cake", Description: "Vanilla sponge with buttercream", PriceCents: 6500, PrepDays: 2},
	{Name: "Wedding cake", Description: "Three tiers, made to order", PriceCents: 45000, PrepDays: 5},
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "insert demo users and products",
		Action: func(c *cli.Context) error {
			cnf, err := parseEnv()
			if err != nil {
				return err
			}
			db, err := storage.Open(cnf.storage())
			if err != nil {
				return err
			}
			defer db.Close()

			err = seed(c.Context, storage.NewUserRepository(db), storage.NewProductRepository(db),
				auth.NewPasswordManager(0))
			if err != nil {
				return err
			}
			log.Info("Tables seeded")
			return nil
		},
	}
}

func seed(ctx context.Context, users model.UserRepository, products model.ProductRepository, passwords model.PasswordManager) error {
	var adminID int64
	for _, s := range seedUsers {
		user := s.user
		hash, err := passwords.Hash(s.password)
		if err != nil {
			return err
		}
		user.HashedPassword = hash
		if err := users.Create(ctx, &user); err != nil {
			return err
		}
		if user.IsAdmin {
			adminID = user.ID
		}
	}

	for _, p := range seedProducts {
		product := p
		product.UserID = &adminID
		if err := products.Create(ctx, &product); err != nil {
			return err
		}
	}
	return nil
}
