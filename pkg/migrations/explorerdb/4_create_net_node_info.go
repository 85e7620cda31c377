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
		log.Println("creating tbl_net_node_info table...")
		if err := mghelper.CreateSchema(ctx, db, &nodestore.NetNodeDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &nodestore.NetNodeDao{}, "is_active")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping tbl_net_node_info table...")
		return mghelper.DropTables(ctx, db, &nodestore.NetNodeDao{})
	})
}
