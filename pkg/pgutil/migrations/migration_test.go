package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/ontio/explorer-nodes/pkg/pgutil"
)

type testDao struct {
	bun.BaseModel `bun:"table:test_table"`
	ID            int64  `bun:",pk,autoincrement"`
	Name          string `bun:",notnull,type:varchar(100)"`
	Age           int    `bun:",nullzero"`
}

func TestCreateAndDropSchema(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "test_table")

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_table")

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestModelIndexes(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelIndexes(ctx, db, &testDao{}, "name", "age"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_table_name")
	pgutil.AssertIndexExists(t, db, "idx_test_table_age")

	if err := DropModelIndexes(ctx, db, &testDao{}, "name", "age"); err != nil {
		t.Fatalf("DropModelIndexes() failed: %v", err)
	}

	var exists bool
	query := `SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`
	if err := db.NewRaw(query, "idx_test_table_name").Scan(ctx, &exists); err != nil {
		t.Fatalf("failed to check index: %v", err)
	}
	if exists {
		t.Error("idx_test_table_name should be dropped")
	}
}

func TestInsertEntry(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := InsertEntry(ctx, db, &testDao{Name: "a", Age: 1}, &testDao{Name: "b", Age: 2}); err != nil {
		t.Fatalf("InsertEntry() failed: %v", err)
	}

	count, err := db.NewSelect().Model((*testDao)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 rows, got %d", count)
	}
}

func TestModelIndexName_NilModel(t *testing.T) {
	if _, err := modelIndexName(nil, nil, "name"); err == nil {
		t.Fatal("expected error for nil model")
	}
}

func TestRunMigrations_UnknownAndMissingCommand(t *testing.T) {
	migrator := migrate.NewMigrator(nil, migrate.NewMigrations())

	if err := RunMigrations(context.Background(), migrator); err == nil {
		t.Fatal("expected error when no command is given")
	}
	if err := RunMigrations(context.Background(), migrator, "sideways"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
