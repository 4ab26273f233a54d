package database

import "embed"

// Migrations holds the schema for every supported driver under migrations/<driver>.
//
//go:embed migrations/postgres/*.sql migrations/oracle/*.sql
var Migrations embed.FS
