package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"bakery/pkg/infrastructure/storage"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "create or upgrade all tables",
				Action: func(*cli.Context) error {
					cnf, err := parseEnv()
					if err != nil {
						return err
					}
					if err := storage.MigrateUp(cnf.storage()); err != nil {
						return err
					}
					log.Info("Tables created")
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "drop all tables",
				Action: func(*cli.Context) error {
					cnf, err := parseEnv()
					if err != nil {
						return err
					}
					if err := storage.MigrateDown(cnf.storage()); err != nil {
						return err
					}
					log.Info("Tables dropped")
					return nil
				},
			},
		},
	}
}
