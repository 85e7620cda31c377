package explorerdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/ontio/explorer-nodes/pkg/nodestore"
	mghelper "github.com/ontio/explorer-nodes/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating tbl_node_bonus table...")
		if err := mghelper.CreateSchema(ctx, db, &nodestore.BonusDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &nodestore.BonusDao{}, "public_key", "address", "update_time")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping tbl_node_bonus table...")
		return mghelper.DropTables(ctx, db, &nodestore.BonusDao{})
	})
}
