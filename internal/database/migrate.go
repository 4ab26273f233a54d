package database

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	schema "trivia-api/database"
	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers "pgx5://"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Migrator applies the embedded schema migrations.
type Migrator interface {
	// Up applies every pending migration. Nothing pending is not an error.
	Up() error
	// Down rolls back the most recent migration.
	Down() error
	// Version returns 0 when no migration has been applied.
	Version() (version uint, dirty bool, err error)
	Close() error
}

// NewMigrator picks the migration backend for the configured driver.
func NewMigrator(cfg config.DBConfig) (Migrator, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return newPostgresMigrator(cfg)
	case config.DriverOracle:
		db, _, err := NewSQLXDB(cfg)
		if err != nil {
			return nil, err
		}
		return newOracleMigrator(db, schema.Migrations, "migrations/oracle")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

type postgresMigrator struct {
	m *migrate.Migrate
}

func newPostgresMigrator(cfg config.DBConfig) (*postgresMigrator, error) {
	src, err := iofs.New(schema.Migrations, "migrations/postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, pgx5URL(cfg.DSN()))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return &postgresMigrator{m: m}, nil
}

// pgx5URL rewrites a postgres:// DSN to the scheme golang-migrate registers for pgx v5.
func pgx5URL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

func (p *postgresMigrator) Up() error {
	if err := p.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

func (p *postgresMigrator) Down() error {
	if err := p.m.Steps(-1); err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

func (p *postgresMigrator) Version() (uint, bool, error) {
	v, dirty, err := p.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (p *postgresMigrator) Close() error {
	srcErr, dbErr := p.m.Close()
	return errors.Join(srcErr, dbErr)
}

type migrationFile struct {
	version uint
	name    string
	up      string
	down    string
}

// loadMigrations reads NNNNNN_name.{up,down}.sql files from dir, sorted by version.
func loadMigrations(fsys fs.FS, dir string) ([]migrationFile, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	byVersion := make(map[uint]*migrationFile)
	for _, entry := range entries {
		name := entry.Name()
		var direction string
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			direction = "up"
		case strings.HasSuffix(name, ".down.sql"):
			direction = "down"
		default:
			continue
		}

		prefix, rest, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration file %s has no version prefix", name)
		}
		version, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration file %s has invalid version: %w", name, err)
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		mf, exists := byVersion[uint(version)]
		if !exists {
			mf = &migrationFile{
				version: uint(version),
				name:    strings.TrimSuffix(strings.TrimSuffix(rest, ".up.sql"), ".down.sql"),
			}
			byVersion[uint(version)] = mf
		}
		if direction == "up" {
			mf.up = string(content)
		} else {
			mf.down = string(content)
		}
	}

	files := make([]migrationFile, 0, len(byVersion))
	for _, mf := range byVersion {
		files = append(files, *mf)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].version < files[j].version })
	return files, nil
}

// splitStatements splits a script on ";" since the Oracle driver executes one statement per call.
func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

const versionTable = "schema_migrations"

// oracleMigrator tracks applied versions in schema_migrations.
type oracleMigrator struct {
	db         *sqlx.DB
	builder    sq.StatementBuilderType
	migrations []migrationFile
}

func newOracleMigrator(db *sqlx.DB, fsys fs.FS, dir string) (*oracleMigrator, error) {
	migrations, err := loadMigrations(fsys, dir)
	if err != nil {
		return nil, err
	}
	return &oracleMigrator{db: db, builder: Oracle.Builder(), migrations: migrations}, nil
}

func (o *oracleMigrator) ensureVersionTable() error {
	var count int
	if err := o.db.Get(&count, "SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'"); err != nil {
		return fmt.Errorf("could not inspect migration table: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := o.db.Exec("CREATE TABLE " + versionTable + " (version NUMBER(19) NOT NULL PRIMARY KEY)"); err != nil {
		return fmt.Errorf("could not create migration table: %w", err)
	}
	return nil
}

func (o *oracleMigrator) current() (uint, error) {
	var version int64
	if err := o.db.Get(&version, "SELECT NVL(MAX(version), 0) FROM "+versionTable); err != nil {
		return 0, fmt.Errorf("could not read migration version: %w", err)
	}
	return uint(version), nil
}

func (o *oracleMigrator) exec(mf migrationFile, script string) error {
	for _, stmt := range splitStatements(script) {
		if _, err := o.db.Exec(stmt); err != nil {
			return fmt.Errorf("could not execute migration %d_%s: %w", mf.version, mf.name, err)
		}
	}
	return nil
}

func (o *oracleMigrator) Up() error {
	if err := o.ensureVersionTable(); err != nil {
		return err
	}
	current, err := o.current()
	if err != nil {
		return err
	}

	for _, mf := range o.migrations {
		if mf.version <= current {
			continue
		}
		if err := o.exec(mf, mf.up); err != nil {
			return err
		}
		query, args, err := o.builder.Insert(versionTable).Columns("version").Values(mf.version).ToSql()
		if err != nil {
			return err
		}
		if _, err := o.db.Exec(query, args...); err != nil {
			return fmt.Errorf("could not record migration %d: %w", mf.version, err)
		}
		logger.Get().Info("Executed migration", zap.Uint("version", mf.version), zap.String("name", mf.name))
	}
	return nil
}

func (o *oracleMigrator) Down() error {
	if err := o.ensureVersionTable(); err != nil {
		return err
	}
	current, err := o.current()
	if err != nil {
		return err
	}
	if current == 0 {
		return errors.New("no migration to roll back")
	}

	for _, mf := range o.migrations {
		if mf.version != current {
			continue
		}
		if err := o.exec(mf, mf.down); err != nil {
			return err
		}
		query, args, err := o.builder.Delete(versionTable).Where(sq.Eq{"version": mf.version}).ToSql()
		if err != nil {
			return err
		}
		if _, err := o.db.Exec(query, args...); err != nil {
			return fmt.Errorf("could not remove migration record %d: %w", mf.version, err)
		}
		logger.Get().Info("Rolled back migration", zap.Uint("version", mf.version), zap.String("name", mf.name))
		return nil
	}
	return fmt.Errorf("applied migration %d has no migration file", current)
}

func (o *oracleMigrator) Version() (uint, bool, error) {
	if err := o.ensureVersionTable(); err != nil {
		return 0, false, err
	}
	v, err := o.current()
	return v, false, err
}

func (o *oracleMigrator) Close() error {
	return o.db.Close()
}
