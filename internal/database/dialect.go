package database

import (
	"fmt"

	"trivia-api/internal/config"

	sq "github.com/Masterminds/squirrel"
)

// Dialect captures the SQL differences between the supported databases.
type Dialect struct {
	Name        string
	DriverName  string
	Placeholder sq.PlaceholderFormat
	// UsesSequences means IDs come from <table>_seq.NEXTVAL instead of INSERT ... RETURNING.
	UsesSequences bool
}

var (
	Postgres = Dialect{
		Name:        config.DriverPostgres,
		DriverName:  "pgx",
		Placeholder: sq.Dollar,
	}
	Oracle = Dialect{
		Name:          config.DriverOracle,
		DriverName:    "oracle",
		Placeholder:   sq.Colon,
		UsesSequences: true,
	}
)

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return Postgres, nil
	case config.DriverOracle:
		return Oracle, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Builder returns a squirrel builder using the dialect's placeholders.
func (d Dialect) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.Placeholder)
}

// NextIDQuery selects the next value of the table's sequence.
func (d Dialect) NextIDQuery(table string) string {
	return fmt.Sprintf("SELECT %s_seq.NEXTVAL FROM DUAL", table)
}
