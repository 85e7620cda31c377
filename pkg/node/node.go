// Package node holds the explorer's node records: on-chain registration
// state, off-chain operator metadata, bonus history and network peers.
package node

import (
	"github.com/shopspring/decimal"
)

// Status is the governance classification of an on-chain node.
type Status int

const (
	StatusUnknown   Status = 0
	StatusCandidate Status = 1
	StatusConsensus Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusCandidate:
		return "candidate"
	case StatusConsensus:
		return "consensus"
	default:
		return "unknown"
	}
}

// OnChainInfo is a registered node's state as recorded on the ledger.
type OnChainInfo struct {
	NodeRank       int    `json:"node_rank"`
	Name           string `json:"name"`
	PublicKey      string `json:"public_key"`
	Address        string `json:"address"`
	Status         Status `json:"status"`
	CurrentStake   int64  `json:"current_stake"`
	Progress       string `json:"progress"`
	DetailURL      string `json:"detail_url"`
	InitPos        int64  `json:"init_pos"`
	TotalPos       int64  `json:"total_pos"`
	MaxAuthorize   int64  `json:"max_authorize"`
	NodeProportion string `json:"node_proportion"`
}

// OnChainDetail is an on-chain record enriched with the operator's
// off-chain profile, when one exists.
type OnChainDetail struct {
	OnChainInfo
	OntID        string `json:"ont_id"`
	Logo         string `json:"logo"`
	Region       string `json:"region"`
	Introduction string `json:"introduction"`
}

// OffChainInfo is operator-supplied metadata that is not stored on the ledger.
type OffChainInfo struct {
	Name         string `json:"name"`
	NodeType     int    `json:"node_type"`
	PublicKey    string `json:"public_key"`
	Address      string `json:"address"`
	OntID        string `json:"ont_id"`
	Logo         string `json:"logo"`
	Region       string `json:"region"`
	Longitude    string `json:"longitude"`
	Latitude     string `json:"latitude"`
	IP           string `json:"ip"`
	Website      string `json:"website"`
	SocialMedia  string `json:"social_media"`
	Telegram     string `json:"telegram"`
	Twitter      string `json:"twitter"`
	Facebook     string `json:"facebook"`
	OpenMail     string `json:"open_mail"`
	ContactMail  string `json:"contact_mail"`
	Introduction string `json:"introduction"`
	Verification int    `json:"verification"`
}

// Bonus is one reward record for a node. UpdateTime is a unix timestamp;
// the record with the highest UpdateTime for a key is the latest bonus.
type Bonus struct {
	PublicKey      string          `json:"public_key"`
	Address        string          `json:"address"`
	Name           string          `json:"name"`
	Stake          decimal.Decimal `json:"stake"`
	NodeProportion string          `json:"node_proportion"`
	UserProportion string          `json:"user_proportion"`
	FinalBonus     decimal.Decimal `json:"final_bonus"`
	UpdateTime     int64           `json:"update_time"`
}

// NetNodeInfo is a peer seen by the network crawler.
type NetNodeInfo struct {
	IP             string `json:"ip"`
	Version        string `json:"version"`
	IsConsensus    bool   `json:"is_consensus"`
	IsActive       bool   `json:"is_active"`
	LastActiveTime int64  `json:"last_active_time"`
	Country        string `json:"country"`
	Longitude      string `json:"longitude"`
	Latitude       string `json:"latitude"`
}

// IsSync reports whether the peer is an active non-consensus node
// taking part in block synchronisation.
func (n NetNodeInfo) IsSync() bool {
	return n.IsActive && !n.IsConsensus
}

// OnChainWithBonus pairs an on-chain node with its bonus record.
// It is built at read time and never stored. Bonus is nil when the node
// has no matching record.
type OnChainWithBonus struct {
	OnChainDetail
	Bonus *Bonus `json:"bonus"`
}
