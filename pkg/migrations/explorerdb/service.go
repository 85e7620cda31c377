// Package explorerdb holds all the migrations for the explorer node database
package explorerdb

import "github.com/uptrace/bun/migrate"

// Migrations is the ordered set of explorer database migrations.
var Migrations = migrate.NewMigrations()
