package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/ontio/explorer-nodes/pkg/config"
	"github.com/ontio/explorer-nodes/pkg/migrations/explorerdb"
	"github.com/ontio/explorer-nodes/pkg/pgutil"
	mghelper "github.com/ontio/explorer-nodes/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	// Connect to database
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for explorer database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, explorerdb.Migrations)

	if err := mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}
