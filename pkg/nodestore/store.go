// Package nodestore reads explorer node tables from PostgreSQL.
package nodestore

import (
	"context"
	"errors"

	"github.com/ontio/explorer-nodes/pkg/node"
)

var (
	// ErrNodeNotFound is returned when no on-chain or off-chain record matches a public key.
	ErrNodeNotFound = errors.New("node not found")
	// ErrBonusNotFound is returned when no bonus record matches a public key or address.
	ErrBonusNotFound = errors.New("node bonus not found")
)

// OnChainStore reads registered node state.
type OnChainStore interface {
	ListOnChain(ctx context.Context) ([]node.OnChainInfo, error)
	GetOnChainByPublicKey(ctx context.Context, publicKey string) (*node.OnChainInfo, error)
	ListOnChainDetails(ctx context.Context) ([]node.OnChainDetail, error)
	SearchOnChainDetailsByName(ctx context.Context, name string) ([]node.OnChainDetail, error)
	CountCandidateNodes(ctx context.Context) (int64, error)
	CountConsensusNodes(ctx context.Context) (int64, error)
}

// OffChainStore reads operator metadata.
type OffChainStore interface {
	ListOffChain(ctx context.Context) ([]node.OffChainInfo, error)
	GetOffChainByPublicKey(ctx context.Context, publicKey string) (*node.OffChainInfo, error)
}

// BonusStore reads node bonus history.
type BonusStore interface {
	CountBonuses(ctx context.Context) (int64, error)
	ListLatestBonuses(ctx context.Context, limit int) ([]node.Bonus, error)
	GetLatestBonusByPublicKey(ctx context.Context, publicKey string) (*node.Bonus, error)
	GetLatestBonusByAddress(ctx context.Context, address string) (*node.Bonus, error)
	SearchBonusesByName(ctx context.Context, name string) ([]node.Bonus, error)
}

// NetNodeStore reads crawled network peers.
type NetNodeStore interface {
	ListActiveNetNodes(ctx context.Context) ([]node.NetNodeInfo, error)
	ListNetNodes(ctx context.Context) ([]node.NetNodeInfo, error)
	CountSyncNodes(ctx context.Context) (int64, error)
}

// Store is the full read interface over the explorer node tables.
type Store interface {
	OnChainStore
	OffChainStore
	BonusStore
	NetNodeStore
}
