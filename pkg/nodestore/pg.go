package nodestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/ontio/explorer-nodes/pkg/node"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the node store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// containsPattern builds an ILIKE pattern matching name anywhere,
// with LIKE wildcards in name taken literally.
func containsPattern(name string) string {
	return "%" + likeEscaper.Replace(name) + "%"
}

func (s *pgStore) ListOnChain(ctx context.Context) ([]node.OnChainInfo, error) {
	var daos []OnChainDao
	err := s.db.NewSelect().
		Model(&daos).
		OrderExpr("node_rank ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list on-chain nodes: %w", err)
	}
	infos := make([]node.OnChainInfo, len(daos))
	for i := range daos {
		infos[i] = toOnChainInfo(&daos[i])
	}
	return infos, nil
}

func (s *pgStore) GetOnChainByPublicKey(ctx context.Context, publicKey string) (*node.OnChainInfo, error) {
	dao := new(OnChainDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("public_key = ?", publicKey).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to get on-chain node: %w", err)
	}
	info := toOnChainInfo(dao)
	return &info, nil
}

func (s *pgStore) detailQuery(daos *[]OnChainDetailDao) *bun.SelectQuery {
	return s.db.NewSelect().
		Model(daos).
		ColumnExpr("oc.*").
		ColumnExpr("COALESCE(ofc.ont_id, '') AS ont_id").
		ColumnExpr("COALESCE(ofc.logo, '') AS logo").
		ColumnExpr("COALESCE(ofc.region, '') AS region").
		ColumnExpr("COALESCE(ofc.introduction, '') AS introduction").
		Join("LEFT JOIN tbl_node_info_off_chain AS ofc ON ofc.public_key = oc.public_key").
		OrderExpr("oc.node_rank ASC")
}

func (s *pgStore) ListOnChainDetails(ctx context.Context) ([]node.OnChainDetail, error) {
	var daos []OnChainDetailDao
	if err := s.detailQuery(&daos).Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list on-chain node details: %w", err)
	}
	return toOnChainDetails(daos), nil
}

func (s *pgStore) SearchOnChainDetailsByName(ctx context.Context, name string) ([]node.OnChainDetail, error) {
	var daos []OnChainDetailDao
	err := s.detailQuery(&daos).
		Where("oc.name ILIKE ?", containsPattern(name)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search on-chain nodes by name: %w", err)
	}
	return toOnChainDetails(daos), nil
}

func toOnChainDetails(daos []OnChainDetailDao) []node.OnChainDetail {
	details := make([]node.OnChainDetail, len(daos))
	for i := range daos {
		details[i] = toOnChainDetail(&daos[i])
	}
	return details
}

func (s *pgStore) countOnChainByStatus(ctx context.Context, status node.Status) (int64, error) {
	n, err := s.db.NewSelect().
		Model((*OnChainDao)(nil)).
		Where("status = ?", int(status)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s nodes: %w", status, err)
	}
	return int64(n), nil
}

func (s *pgStore) CountCandidateNodes(ctx context.Context) (int64, error) {
	return s.countOnChainByStatus(ctx, node.StatusCandidate)
}

func (s *pgStore) CountConsensusNodes(ctx context.Context) (int64, error) {
	return s.countOnChainByStatus(ctx, node.StatusConsensus)
}

func (s *pgStore) ListOffChain(ctx context.Context) ([]node.OffChainInfo, error) {
	var daos []OffChainDao
	err := s.db.NewSelect().
		Model(&daos).
		OrderExpr("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list off-chain nodes: %w", err)
	}
	infos := make([]node.OffChainInfo, len(daos))
	for i := range daos {
		infos[i] = toOffChainInfo(&daos[i])
	}
	return infos, nil
}

func (s *pgStore) GetOffChainByPublicKey(ctx context.Context, publicKey string) (*node.OffChainInfo, error) {
	dao := new(OffChainDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("public_key = ?", publicKey).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to get off-chain node: %w", err)
	}
	info := toOffChainInfo(dao)
	return &info, nil
}

func (s *pgStore) CountBonuses(ctx context.Context) (int64, error) {
	n, err := s.db.NewSelect().
		Model((*BonusDao)(nil)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count node bonuses: %w", err)
	}
	return int64(n), nil
}

// latestFirst orders bonus rows newest settlement first; id breaks ties
// between rows written for the same settlement.
func latestFirst(q *bun.SelectQuery) *bun.SelectQuery {
	return q.OrderExpr("update_time DESC").OrderExpr("id DESC")
}

func (s *pgStore) ListLatestBonuses(ctx context.Context, limit int) ([]node.Bonus, error) {
	if limit <= 0 {
		return []node.Bonus{}, nil
	}
	var daos []BonusDao
	err := latestFirst(s.db.NewSelect().Model(&daos)).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest node bonuses: %w", err)
	}
	return toBonuses(daos), nil
}

func (s *pgStore) getLatestBonus(ctx context.Context, column, value string) (*node.Bonus, error) {
	dao := new(BonusDao)
	err := latestFirst(s.db.NewSelect().Model(dao)).
		Where("? = ?", bun.Ident(column), value).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBonusNotFound
		}
		return nil, fmt.Errorf("failed to get latest node bonus by %s: %w", column, err)
	}
	b := toBonus(dao)
	return &b, nil
}

func (s *pgStore) GetLatestBonusByPublicKey(ctx context.Context, publicKey string) (*node.Bonus, error) {
	return s.getLatestBonus(ctx, "public_key", publicKey)
}

func (s *pgStore) GetLatestBonusByAddress(ctx context.Context, address string) (*node.Bonus, error) {
	return s.getLatestBonus(ctx, "address", address)
}

func (s *pgStore) SearchBonusesByName(ctx context.Context, name string) ([]node.Bonus, error) {
	var daos []BonusDao
	err := latestFirst(s.db.NewSelect().Model(&daos)).
		Where("name ILIKE ?", containsPattern(name)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search node bonuses by name: %w", err)
	}
	return toBonuses(daos), nil
}

func toBonuses(daos []BonusDao) []node.Bonus {
	bonuses := make([]node.Bonus, len(daos))
	for i := range daos {
		bonuses[i] = toBonus(&daos[i])
	}
	return bonuses
}

func (s *pgStore) listNetNodes(ctx context.Context, activeOnly bool) ([]node.NetNodeInfo, error) {
	var daos []NetNodeDao
	q := s.db.NewSelect().Model(&daos)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.OrderExpr("last_active_time DESC").OrderExpr("ip ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list net nodes: %w", err)
	}
	nodes := make([]node.NetNodeInfo, len(daos))
	for i := range daos {
		nodes[i] = toNetNodeInfo(&daos[i])
	}
	return nodes, nil
}

func (s *pgStore) ListActiveNetNodes(ctx context.Context) ([]node.NetNodeInfo, error) {
	return s.listNetNodes(ctx, true)
}

func (s *pgStore) ListNetNodes(ctx context.Context) ([]node.NetNodeInfo, error) {
	return s.listNetNodes(ctx, false)
}

func (s *pgStore) CountSyncNodes(ctx context.Context) (int64, error) {
	n, err := s.db.NewSelect().
		Model((*NetNodeDao)(nil)).
		Where("is_active = ?", true).
		Where("is_consensus = ?", false).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count sync nodes: %w", err)
	}
	return int64(n), nil
}
