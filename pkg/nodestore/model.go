package nodestore

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/ontio/explorer-nodes/pkg/node"
)

// OnChainDao maps to the 'tbl_node_info_on_chain' table.
type OnChainDao struct {
	bun.BaseModel  `bun:"table:tbl_node_info_on_chain,alias:oc"`
	PublicKey      string `bun:"public_key,pk,type:varchar(130)"`
	NodeRank       int    `bun:"node_rank,notnull"`
	Name           string `bun:"name,notnull,type:varchar(255)"`
	Address        string `bun:"address,notnull,type:varchar(64)"`
	Status         int    `bun:"status,notnull"`
	CurrentStake   int64  `bun:"current_stake,notnull"`
	Progress       string `bun:"progress,type:varchar(32)"`
	DetailURL      string `bun:"detail_url,type:varchar(255)"`
	InitPos        int64  `bun:"init_pos,notnull"`
	TotalPos       int64  `bun:"total_pos,notnull"`
	MaxAuthorize   int64  `bun:"max_authorize,notnull"`
	NodeProportion string `bun:"node_proportion,type:varchar(32)"`
}

// OnChainDetailDao is the on-chain row extended with the operator's
// off-chain profile columns (left joined, so they may be empty).
type OnChainDetailDao struct {
	OnChainDao   `bun:",extend"`
	OntID        string `bun:"ont_id"`
	Logo         string `bun:"logo"`
	Region       string `bun:"region"`
	Introduction string `bun:"introduction"`
}

// OffChainDao maps to the 'tbl_node_info_off_chain' table.
type OffChainDao struct {
	bun.BaseModel `bun:"table:tbl_node_info_off_chain,alias:ofc"`
	PublicKey     string `bun:"public_key,pk,type:varchar(130)"`
	Name          string `bun:"name,notnull,type:varchar(255)"`
	NodeType      int    `bun:"node_type,notnull"`
	Address       string `bun:"address,notnull,type:varchar(64)"`
	OntID         string `bun:"ont_id,type:varchar(255)"`
	Logo          string `bun:"logo,type:varchar(255)"`
	Region        string `bun:"region,type:varchar(128)"`
	Longitude     string `bun:"longitude,type:varchar(32)"`
	Latitude      string `bun:"latitude,type:varchar(32)"`
	IP            string `bun:"ip,type:varchar(64)"`
	Website       string `bun:"website,type:varchar(255)"`
	SocialMedia   string `bun:"social_media,type:varchar(255)"`
	Telegram      string `bun:"telegram,type:varchar(255)"`
	Twitter       string `bun:"twitter,type:varchar(255)"`
	Facebook      string `bun:"facebook,type:varchar(255)"`
	OpenMail      string `bun:"open_mail,type:varchar(255)"`
	ContactMail   string `bun:"contact_mail,type:varchar(255)"`
	Introduction  string `bun:"introduction,type:text"`
	Verification  int    `bun:"verification,notnull"`
}

// BonusDao maps to the 'tbl_node_bonus' table. One row per node per
// settlement; UpdateTime is the settlement unix timestamp.
type BonusDao struct {
	bun.BaseModel  `bun:"table:tbl_node_bonus,alias:nb"`
	ID             int64           `bun:"id,pk,autoincrement"`
	PublicKey      string          `bun:"public_key,notnull,type:varchar(130)"`
	Address        string          `bun:"address,notnull,type:varchar(64)"`
	Name           string          `bun:"name,notnull,type:varchar(255)"`
	Stake          decimal.Decimal `bun:"stake,notnull,type:numeric(38,9)"`
	NodeProportion string          `bun:"node_proportion,type:varchar(32)"`
	UserProportion string          `bun:"user_proportion,type:varchar(32)"`
	FinalBonus     decimal.Decimal `bun:"final_bonus,notnull,type:numeric(38,9)"`
	UpdateTime     int64           `bun:"update_time,notnull"`
}

// NetNodeDao maps to the 'tbl_net_node_info' table.
type NetNodeDao struct {
	bun.BaseModel  `bun:"table:tbl_net_node_info,alias:nn"`
	IP             string `bun:"ip,pk,type:varchar(64)"`
	Version        string `bun:"version,type:varchar(64)"`
	IsConsensus    bool   `bun:"is_consensus,notnull"`
	IsActive       bool   `bun:"is_active,notnull"`
	LastActiveTime int64  `bun:"last_active_time,notnull"`
	Country        string `bun:"country,type:varchar(64)"`
	Longitude      string `bun:"longitude,type:varchar(32)"`
	Latitude       string `bun:"latitude,type:varchar(32)"`
}

func toOnChainInfo(dao *OnChainDao) node.OnChainInfo {
	return node.OnChainInfo{
		NodeRank:       dao.NodeRank,
		Name:           dao.Name,
		PublicKey:      dao.PublicKey,
		Address:        dao.Address,
		Status:         node.Status(dao.Status),
		CurrentStake:   dao.CurrentStake,
		Progress:       dao.Progress,
		DetailURL:      dao.DetailURL,
		InitPos:        dao.InitPos,
		TotalPos:       dao.TotalPos,
		MaxAuthorize:   dao.MaxAuthorize,
		NodeProportion: dao.NodeProportion,
	}
}

func toOnChainDetail(dao *OnChainDetailDao) node.OnChainDetail {
	return node.OnChainDetail{
		OnChainInfo:  toOnChainInfo(&dao.OnChainDao),
		OntID:        dao.OntID,
		Logo:         dao.Logo,
		Region:       dao.Region,
		Introduction: dao.Introduction,
	}
}

func toOffChainInfo(dao *OffChainDao) node.OffChainInfo {
	return node.OffChainInfo{
		Name:         dao.Name,
		NodeType:     dao.NodeType,
		PublicKey:    dao.PublicKey,
		Address:      dao.Address,
		OntID:        dao.OntID,
		Logo:         dao.Logo,
		Region:       dao.Region,
		Longitude:    dao.Longitude,
		Latitude:     dao.Latitude,
		IP:           dao.IP,
		Website:      dao.Website,
		SocialMedia:  dao.SocialMedia,
		Telegram:     dao.Telegram,
		Twitter:      dao.Twitter,
		Facebook:     dao.Facebook,
		OpenMail:     dao.OpenMail,
		ContactMail:  dao.ContactMail,
		Introduction: dao.Introduction,
		Verification: dao.Verification,
	}
}

func toBonus(dao *BonusDao) node.Bonus {
	return node.Bonus{
		PublicKey:      dao.PublicKey,
		Address:        dao.Address,
		Name:           dao.Name,
		Stake:          dao.Stake,
		NodeProportion: dao.NodeProportion,
		UserProportion: dao.UserProportion,
		FinalBonus:     dao.FinalBonus,
		UpdateTime:     dao.UpdateTime,
	}
}

func toNetNodeInfo(dao *NetNodeDao) node.NetNodeInfo {
	return node.NetNodeInfo{
		IP:             dao.IP,
		Version:        dao.Version,
		IsConsensus:    dao.IsConsensus,
		IsActive:       dao.IsActive,
		LastActiveTime: dao.LastActiveTime,
		Country:        dao.Country,
		Longitude:      dao.Longitude,
		Latitude:       dao.Latitude,
	}
}
