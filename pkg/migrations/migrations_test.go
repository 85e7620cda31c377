package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/ontio/explorer-nodes/pkg/migrations/explorerdb"
	"github.com/ontio/explorer-nodes/pkg/pgutil"
)

func TestExplorerDBMigrations_Apply(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, explorerdb.Migrations)

	// Initialize migration system
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	expectedTables := []string{
		"tbl_node_info_on_chain",
		"tbl_node_info_off_chain",
		"tbl_node_bonus",
		"tbl_net_node_info",
		"bun_migrations",
	}
	for _, table := range expectedTables {
		pgutil.AssertTableExists(t, db, table)
	}

	expectedIndexes := []string{
		"idx_tbl_node_info_on_chain_status",
		"idx_tbl_node_info_on_chain_name",
		"idx_tbl_node_bonus_public_key",
		"idx_tbl_node_bonus_address",
		"idx_tbl_node_bonus_update_time",
		"idx_tbl_net_node_info_is_active",
	}
	for _, index := range expectedIndexes {
		pgutil.AssertIndexExists(t, db, index)
	}
}

func TestMigrations_Idempotency(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, explorerdb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	// Run migrations second time - should not fail
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	pgutil.AssertTableExists(t, db, "tbl_node_bonus")
}

func TestMigrations_Rollback(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, explorerdb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	pgutil.AssertTableExists(t, db, "tbl_node_info_on_chain")

	// All migrations ran in one group, so one rollback undoes them all
	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to process a migration")
	}

	pgutil.AssertTableNotExists(t, db, "tbl_net_node_info")
	pgutil.AssertTableNotExists(t, db, "tbl_node_bonus")
	pgutil.AssertTableNotExists(t, db, "tbl_node_info_off_chain")
	pgutil.AssertTableNotExists(t, db, "tbl_node_info_on_chain")
}
