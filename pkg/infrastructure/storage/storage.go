package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"net/url"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

//go:embed data
var migrations embed.FS

type Config struct {
	Driver   string
	Host     string
	Name     string
	User     string
	Password string
	// Path is the database file used by the SQLite driver.
	Path string
}

func (c Config) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		cfg := mysql.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = c.Host
		cfg.DBName = c.Name
		cfg.User = c.User
		cfg.Passwd = c.Password
		cfg.ParseTime = true
		cfg.MultiStatements = true
		// UPDATE reports matched rows so an unchanged row is not mistaken for a missing one.
		cfg.ClientFoundRows = true
		return cfg.FormatDSN(), nil
	case DriverSQLite:
		q := url.Values{}
		q.Add("_pragma", "foreign_keys(1)")
		q.Add("_pragma", "busy_timeout(5000)")
		return fmt.Sprintf("file:%s?%s", c.Path, q.Encode()), nil
	default:
		return "", errors.Errorf("unsupported database driver %q", c.Driver)
	}
}

func Open(c Config) (*sqlx.DB, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Open(c.Driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", c.Driver)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "ping %s database", c.Driver)
	}
	if c.Driver == DriverSQLite {
		// a single writer avoids SQLITE_BUSY under concurrent requests
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// MigrateUp applies every pending migration.
func MigrateUp(c Config) error {
	return runMigration(c, func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown reverts every applied migration, dropping all tables.
func MigrateDown(c Config) error {
	return runMigration(c, func(m *migrate.Migrate) error { return m.Down() })
}

func runMigration(c Config, action func(m *migrate.Migrate) error) error {
	dsn, err := c.DSN()
	if err != nil {
		return err
	}
	// migrate closes the database it is given, so it gets its own handle
	db, err := sql.Open(c.Driver, dsn)
	if err != nil {
		return errors.Wrapf(err, "open %s database", c.Driver)
	}

	m, err := newMigrate(c.Driver, db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer m.Close()

	if err := action(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate")
	}
	return nil
}

func newMigrate(driver string, db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations, "data/"+driver)
	if err != nil {
		return nil, errors.Wrap(err, "load migrations")
	}

	var target database.Driver
	switch driver {
	case DriverMySQL:
		target, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	case DriverSQLite:
		target, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		err = errors.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, errors.Wrap(err, "migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return nil, errors.Wrap(err, "create migrator")
	}
	return m, nil
}
