package database

import (
	"fmt"

	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // registers "oracle"
	"go.uber.org/zap"
)

// NewSQLXDB connects to the configured database and pings it.
func NewSQLXDB(cfg config.DBConfig) (*sqlx.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, Dialect{}, err
	}

	db, err := sqlx.Connect(dialect.DriverName, cfg.DSN())
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("failed to connect to %s database: %w", dialect.Name, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	logger.Get().Info("Connected to database",
		zap.String("driver", dialect.Name),
		zap.String("host", cfg.Host),
		zap.String("name", cfg.DBName))
	return db, dialect, nil
}
