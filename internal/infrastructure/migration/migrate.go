package migration

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"docstore/internal/app/server/config"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the database drivers used in migration URLs.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/sqlite/*.sql sql/postgres/*.sql
var migrations embed.FS

// Migrator is the subset of *migrate.Migrate used here.
type Migrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Close() (error, error)
}

// MigrationEngine builds a Migrator, so tests can avoid a real database.
type MigrationEngine func(src source.Driver, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

func DefaultEngine(src source.Driver, databaseURL string) (Migrator, error) {
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// Up applies all pending migrations. ErrNoChange is not an error.
func (mg *Migration) Up() error {
	return mg.run(func(m Migrator) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up: %w", err)
		}
		return nil
	})
}

// Down reverts every applied migration.
func (mg *Migration) Down() error {
	return mg.run(func(m Migrator) error {
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down: %w", err)
		}
		return nil
	})
}

// Version reports the applied schema version; ok is false for an empty database.
func (mg *Migration) Version() (version uint, dirty bool, ok bool, err error) {
	err = mg.run(func(m Migrator) error {
		v, d, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			return nil
		}
		if verr != nil {
			return fmt.Errorf("migration version: %w", verr)
		}
		version, dirty, ok = v, d, true
		return nil
	})
	return version, dirty, ok, err
}

func (mg *Migration) run(fn func(Migrator) error) (err error) {
	src, err := Source(mg.cfg.DB.Driver)
	if err != nil {
		return err
	}

	dbURL, err := DatabaseURL(mg.cfg.DB.Driver, mg.cfg.DB.DatabaseURI)
	if err != nil {
		return err
	}

	m, err := mg.engine(src, dbURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database: %w", dberr))
		}
	}()

	return fn(m)
}

// Source returns the embedded migrations for a storage driver.
func Source(driver string) (source.Driver, error) {
	switch driver {
	case config.DriverSQLite:
		return iofs.New(migrations, "sql/sqlite")
	case config.DriverPostgres:
		return iofs.New(migrations, "sql/postgres")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// DatabaseURL converts a configured database URI into a golang-migrate URL.
func DatabaseURL(driver, uri string) (string, error) {
	switch driver {
	case config.DriverSQLite:
		path := strings.TrimPrefix(uri, "file:")
		return "sqlite3://" + path, nil
	case config.DriverPostgres:
		for _, prefix := range []string{"postgres://", "postgresql://"} {
			if strings.HasPrefix(uri, prefix) {
				return "pgx5://" + strings.TrimPrefix(uri, prefix), nil
			}
		}
		return "", fmt.Errorf("postgres uri must start with postgres:// or postgresql://")
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
