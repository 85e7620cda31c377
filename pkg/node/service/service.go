// Package service is the read-only query facade over the explorer node
// tables, with its HTTP surface and decorators.
package service

import (
	"context"
	"errors"

	apperrors "github.com/ontio/explorer-nodes/pkg/app/errors"
	"github.com/ontio/explorer-nodes/pkg/node"
	"github.com/ontio/explorer-nodes/pkg/nodestore"
)

// Store is the narrow data-access interface for the node service.
// Defined here to keep the service decoupled from nodestore implementation details.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	ListOnChain(ctx context.Context) ([]node.OnChainInfo, error)
	GetOnChainByPublicKey(ctx context.Context, publicKey string) (*node.OnChainInfo, error)
	ListOnChainDetails(ctx context.Context) ([]node.OnChainDetail, error)
	SearchOnChainDetailsByName(ctx context.Context, name string) ([]node.OnChainDetail, error)
	CountCandidateNodes(ctx context.Context) (int64, error)
	CountConsensusNodes(ctx context.Context) (int64, error)

	ListOffChain(ctx context.Context) ([]node.OffChainInfo, error)
	GetOffChainByPublicKey(ctx context.Context, publicKey string) (*node.OffChainInfo, error)

	CountBonuses(ctx context.Context) (int64, error)
	ListLatestBonuses(ctx context.Context, limit int) ([]node.Bonus, error)
	GetLatestBonusByPublicKey(ctx context.Context, publicKey string) (*node.Bonus, error)
	GetLatestBonusByAddress(ctx context.Context, address string) (*node.Bonus, error)
	SearchBonusesByName(ctx context.Context, name string) ([]node.Bonus, error)

	ListActiveNetNodes(ctx context.Context) ([]node.NetNodeInfo, error)
	ListNetNodes(ctx context.Context) ([]node.NetNodeInfo, error)
	CountSyncNodes(ctx context.Context) (int64, error)
}

// Service defines the node query operations exposed to the explorer.
//
// Keyed lookups that match nothing return a CategoryResourceNotFound error;
// storage faults return CategoryDependencyFailure (or CategoryConnectionTimeout
// when the context deadline expired). Use NewFallback for callers that expect
// empty defaults instead of errors.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	OnChainInfos(ctx context.Context) ([]node.OnChainInfo, error)
	OnChainInfo(ctx context.Context, publicKey string) (*node.OnChainInfo, error)
	OffChainInfos(ctx context.Context) ([]node.OffChainInfo, error)
	OffChainInfo(ctx context.Context, publicKey string) (*node.OffChainInfo, error)
	BonusHistories(ctx context.Context) ([]node.Bonus, error)
	LatestBonusByPublicKey(ctx context.Context, publicKey string) (*node.Bonus, error)
	LatestBonusByAddress(ctx context.Context, address string) (*node.Bonus, error)
	LatestBonusesWithInfos(ctx context.Context) ([]node.OnChainWithBonus, error)
	SearchOnChainWithBonusByName(ctx context.Context, name string) ([]node.OnChainWithBonus, error)
	ActiveNetNodes(ctx context.Context) ([]node.NetNodeInfo, error)
	NetNodes(ctx context.Context) ([]node.NetNodeInfo, error)
	SyncNodeCount(ctx context.Context) (int64, error)
	CandidateNodeCount(ctx context.Context) (int64, error)
	ConsensusNodeCount(ctx context.Context) (int64, error)
}

type nodeService struct {
	store Store
}

// NewService creates a new node query service
func NewService(store Store) Service {
	return &nodeService{store: store}
}

func (s *nodeService) OnChainInfos(ctx context.Context) ([]node.OnChainInfo, error) {
	infos, err := s.store.ListOnChain(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return nonNil(infos), nil
}

func (s *nodeService) OnChainInfo(ctx context.Context, publicKey string) (*node.OnChainInfo, error) {
	info, err := s.store.GetOnChainByPublicKey(ctx, publicKey)
	if err != nil {
		return nil, storeFault(err)
	}
	return info, nil
}

func (s *nodeService) OffChainInfos(ctx context.Context) ([]node.OffChainInfo, error) {
	infos, err := s.store.ListOffChain(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return nonNil(infos), nil
}

func (s *nodeService) OffChainInfo(ctx context.Context, publicKey string) (*node.OffChainInfo, error) {
	info, err := s.store.GetOffChainByPublicKey(ctx, publicKey)
	if err != nil {
		return nil, storeFault(err)
	}
	return info, nil
}

// BonusHistories returns the bonus history, newest first. The row count is
// read first and used as the fetch limit; rows written between the two
// queries may be missed or cut off.
func (s *nodeService) BonusHistories(ctx context.Context) ([]node.Bonus, error) {
	total, err := s.store.CountBonuses(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	if total <= 0 {
		return []node.Bonus{}, nil
	}

	bonuses, err := s.store.ListLatestBonuses(ctx, int(total))
	if err != nil {
		return nil, storeFault(err)
	}
	return nonNil(bonuses), nil
}

func (s *nodeService) LatestBonusByPublicKey(ctx context.Context, publicKey string) (*node.Bonus, error) {
	bonus, err := s.store.GetLatestBonusByPublicKey(ctx, publicKey)
	if err != nil {
		return nil, storeFault(err)
	}
	return bonus, nil
}

func (s *nodeService) LatestBonusByAddress(ctx context.Context, address string) (*node.Bonus, error) {
	bonus, err := s.store.GetLatestBonusByAddress(ctx, address)
	if err != nil {
		return nil, storeFault(err)
	}
	return bonus, nil
}

// LatestBonusesWithInfos pairs every on-chain node with its most recent
// bonus record. A fault in either query fails the whole operation.
func (s *nodeService) LatestBonusesWithInfos(ctx context.Context) ([]node.OnChainWithBonus, error) {
	infos, err := s.store.ListOnChainDetails(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	bonuses, err := s.BonusHistories(ctx)
	if err != nil {
		return nil, err
	}
	return node.MergeBonuses(infos, bonuses), nil
}

// SearchOnChainWithBonusByName applies name to both the on-chain and the
// bonus query independently, then merges the two result sets.
func (s *nodeService) SearchOnChainWithBonusByName(ctx context.Context, name string) ([]node.OnChainWithBonus, error) {
	infos, err := s.store.SearchOnChainDetailsByName(ctx, name)
	if err != nil {
		return nil, storeFault(err)
	}
	bonuses, err := s.store.SearchBonusesByName(ctx, name)
	if err != nil {
		return nil, storeFault(err)
	}
	return node.MergeBonuses(infos, bonuses), nil
}

func (s *nodeService) ActiveNetNodes(ctx context.Context) ([]node.NetNodeInfo, error) {
	nodes, err := s.store.ListActiveNetNodes(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return nonNil(nodes), nil
}

func (s *nodeService) NetNodes(ctx context.Context) ([]node.NetNodeInfo, error) {
	nodes, err := s.store.ListNetNodes(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return nonNil(nodes), nil
}

func (s *nodeService) SyncNodeCount(ctx context.Context) (int64, error) {
	n, err := s.store.CountSyncNodes(ctx)
	if err != nil {
		return 0, storeFault(err)
	}
	return n, nil
}

func (s *nodeService) CandidateNodeCount(ctx context.Context) (int64, error) {
	n, err := s.store.CountCandidateNodes(ctx)
	if err != nil {
		return 0, storeFault(err)
	}
	return n, nil
}

func (s *nodeService) ConsensusNodeCount(ctx context.Context) (int64, error) {
	n, err := s.store.CountConsensusNodes(ctx)
	if err != nil {
		return 0, storeFault(err)
	}
	return n, nil
}

// storeFault categorises a store error for the HTTP layer.
func storeFault(err error) error {
	switch {
	case errors.Is(err, nodestore.ErrNodeNotFound):
		return apperrors.ResourceNotFoundError(err, "node not found")
	case errors.Is(err, nodestore.ErrBonusNotFound):
		return apperrors.ResourceNotFoundError(err, "node bonus not found")
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.TimeoutError(err, "node store timed out")
	default:
		return apperrors.DependencyFailureError(err, "node store unavailable")
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
