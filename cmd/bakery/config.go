package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"bakery/pkg/infrastructure/storage"
)

const appID = "bakery"

type config struct {
	HTTPAddress string        `envconfig:"http_address" default:":8080"`
	LogLevel    string        `envconfig:"log_level" default:"info"`
	DBDriver    string        `envconfig:"db_driver" default:"mysql"`
	DBHost      string        `envconfig:"db_host" default:"localhost:3306"`
	DBName      string        `envconfig:"db_name" default:"bakery"`
	DBUser      string        `envconfig:"db_user" default:"bakery"`
	DBPassword  string        `envconfig:"db_password"`
	DBPath      string        `envconfig:"db_path" default:"bakery.db"`
	JWTSecret   string        `envconfig:"jwt_secret"`
	TokenTTL    time.Duration `envconfig:"token_ttl" default:"168h"`
	Timezone    string        `envconfig:"timezone" default:"Local"`
}

func parseEnv() (*config, error) {
	c := new(config)
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	return c, nil
}

func (c *config) storage() storage.Config {
	return storage.Config{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Name:     c.DBName,
		User:     c.DBUser,
		Password: c.DBPassword,
		Path:     c.DBPath,
	}
}

func (c *config) location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	return loc, errors.Wrapf(err, "load timezone %q", c.Timezone)
}
