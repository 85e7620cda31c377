package nodestore

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ontio/explorer-nodes/pkg/node"
	"github.com/ontio/explorer-nodes/pkg/pgutil"
	mghelper "github.com/ontio/explorer-nodes/pkg/pgutil/migrations"
)

const (
	pkAlpha = "02aaaa"
	pkBeta  = "02bbbb"
	pkGamma = "02cccc"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db := pgutil.SetupTestDB(t)

	if err := mghelper.CreateSchema(ctx, db, &OnChainDao{}, &OffChainDao{}, &BonusDao{}, &NetNodeDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
}

func seed(t *testing.T, ctx context.Context, s *pgStore, entries ...any) {
	t.Helper()
	if err := mghelper.InsertEntry(ctx, s.db, entries...); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
}

func onChain(pk, name string, rank int, status node.Status) *OnChainDao {
	return &OnChainDao{
		PublicKey: pk,
		NodeRank:  rank,
		Name:      name,
		Address:   "A" + pk,
		Status:    int(status),
	}
}

func bonus(pk, addr, name string, updateTime int64, final string) *BonusDao {
	return &BonusDao{
		PublicKey:  pk,
		Address:    addr,
		Name:       name,
		Stake:      decimal.NewFromInt(1000),
		FinalBonus: decimal.RequireFromString(final),
		UpdateTime: updateTime,
	}
}

func TestPGStore_OnChain(t *testing.T) {
	ctx, s := setupStore(t)

	seed(t, ctx, s,
		onChain(pkBeta, "Beta", 2, node.StatusCandidate),
		onChain(pkAlpha, "Alpha", 1, node.StatusConsensus),
		onChain(pkGamma, "Gamma", 3, node.StatusCandidate),
	)

	infos, err := s.ListOnChain(ctx)
	if err != nil {
		t.Fatalf("ListOnChain failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(infos))
	}
	if infos[0].PublicKey != pkAlpha || infos[2].PublicKey != pkGamma {
		t.Fatalf("expected rank order, got %s..%s", infos[0].PublicKey, infos[2].PublicKey)
	}

	got, err := s.GetOnChainByPublicKey(ctx, pkBeta)
	if err != nil {
		t.Fatalf("GetOnChainByPublicKey failed: %v", err)
	}
	if got.Name != "Beta" || got.Status != node.StatusCandidate {
		t.Fatalf("unexpected node: %+v", got)
	}

	if _, err = s.GetOnChainByPublicKey(ctx, "02ffff"); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}

	candidates, err := s.CountCandidateNodes(ctx)
	if err != nil {
		t.Fatalf("CountCandidateNodes failed: %v", err)
	}
	if candidates != 2 {
		t.Fatalf("expected 2 candidate nodes, got %d", candidates)
	}

	consensus, err := s.CountConsensusNodes(ctx)
	if err != nil {
		t.Fatalf("CountConsensusNodes failed: %v", err)
	}
	if consensus != 1 {
		t.Fatalf("expected 1 consensus node, got %d", consensus)
	}
}

func TestPGStore_ListOnChain_Empty(t *testing.T) {
	ctx, s := setupStore(t)

	infos, err := s.ListOnChain(ctx)
	if err != nil {
		t.Fatalf("ListOnChain failed: %v", err)
	}
	if infos == nil || len(infos) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", infos)
	}
}

func TestPGStore_OnChainDetails(t *testing.T) {
	ctx, s := setupStore(t)

	seed(t, ctx, s,
		onChain(pkAlpha, "Alpha Node", 1, node.StatusConsensus),
		onChain(pkBeta, "Beta Node", 2, node.StatusCandidate),
		&OffChainDao{
			PublicKey:    pkAlpha,
			Name:         "Alpha Node",
			Address:      "A" + pkAlpha,
			OntID:        "did:ont:alpha",
			Logo:         "https://alpha/logo.png",
			Region:       "EU",
			Introduction: "first",
		},
	)

	details, err := s.ListOnChainDetails(ctx)
	if err != nil {
		t.Fatalf("ListOnChainDetails failed: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(details))
	}
	if details[0].OntID != "did:ont:alpha" || details[0].Region != "EU" {
		t.Fatalf("expected off-chain profile on alpha, got %+v", details[0])
	}
	if details[0].Name != "Alpha Node" || details[0].NodeRank != 1 {
		t.Fatalf("on-chain columns not scanned: %+v", details[0].OnChainInfo)
	}
	if details[1].PublicKey != pkBeta || details[1].OntID != "" {
		t.Fatalf("expected beta without profile, got %+v", details[1])
	}
}

func TestPGStore_SearchByName_EscapesWildcards(t *testing.T) {
	ctx, s := setupStore(t)

	seed(t, ctx, s,
		onChain(pkAlpha, "100% uptime", 1, node.StatusConsensus),
		onChain(pkBeta, "100 nodes", 2, node.StatusCandidate),
		onChain(pkGamma, "under_score", 3, node.StatusCandidate),
		bonus(pkAlpha, "Aa", "100% uptime", 10, "1"),
		bonus(pkBeta, "Ab", "100 nodes", 20, "2"),
	)

	details, err := s.SearchOnChainDetailsByName(ctx, "100%")
	if err != nil {
		t.Fatalf("SearchOnChainDetailsByName failed: %v", err)
	}
	if len(details) != 1 || details[0].PublicKey != pkAlpha {
		t.Fatalf("expected only alpha, got %+v", details)
	}

	details, err = s.SearchOnChainDetailsByName(ctx, "_")
	if err != nil {
		t.Fatalf("SearchOnChainDetailsByName failed: %v", err)
	}
	if len(details) != 1 || details[0].PublicKey != pkGamma {
		t.Fatalf("expected only gamma, got %+v", details)
	}

	details, err = s.SearchOnChainDetailsByName(ctx, "NODES")
	if err != nil {
		t.Fatalf("SearchOnChainDetailsByName failed: %v", err)
	}
	if len(details) != 1 || details[0].PublicKey != pkBeta {
		t.Fatalf("expected case-insensitive match on beta, got %+v", details)
	}

	bonuses, err := s.SearchBonusesByName(ctx, "100")
	if err != nil {
		t.Fatalf("SearchBonusesByName failed: %v", err)
	}
	if len(bonuses) != 2 || bonuses[0].PublicKey != pkBeta {
		t.Fatalf("expected both bonuses latest first, got %+v", bonuses)
	}
}

func TestPGStore_OffChain(t *testing.T) {
	ctx, s := setupStore(t)

	seed(t, ctx, s,
		&OffChainDao{PublicKey: pkBeta, Name: "Beta", Address: "Ab", NodeType: 1, Verification: 1},
		&OffChainDao{PublicKey: pkAlpha, Name: "Alpha", Address: "Aa", Website: "https://alpha"},
	)

	infos, err := s.ListOffChain(ctx)
	if err != nil {
		t.Fatalf("ListOffChain failed: %v", err)
	}
	if len(infos) != 2 || infos[0].Name != "Alpha" {
		t.Fatalf("unexpected off-chain list: %+v", infos)
	}

	got, err := s.GetOffChainByPublicKey(ctx, pkBeta)
	if err != nil {
		t.Fatalf("GetOffChainByPublicKey failed: %v", err)
	}
	if got.NodeType != 1 || got.Verification != 1 {
		t.Fatalf("unexpected off-chain node: %+v", got)
	}

	if _, err = s.GetOffChainByPublicKey(ctx, pkGamma); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestPGStore_Bonuses(t *testing.T) {
	ctx, s := setupStore(t)

	seed(t, ctx, s,
		bonus(pkAlpha, "Aa", "Alpha", 100, "1.5"),
		bonus(pkAlpha, "Aa", "Alpha", 200, "2.5"),
		bonus(pkBeta, "Ab", "Beta", 150, "3"),
		// rows attributed only by address
		bonus("", "Ac", "Gamma", 120, "4"),
		bonus("", "Ac", "Gamma", 300, "4.25"),
	)

	total, err := s.CountBonuses(ctx)
	if err != nil {
		t.Fatalf("CountBonuses failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected 5 bonus rows, got %d", total)
	}

	latest, err := s.ListLatestBonuses(ctx, 3)
	if err != nil {
		t.Fatalf("ListLatestBonuses failed: %v", err)
	}
	if len(latest) != 3 {
		t.Fatalf("expected 3 bonuses, got %d", len(latest))
	}
	wantTimes := []int64{300, 200, 150}
	for i, want := range wantTimes {
		if latest[i].UpdateTime != want {
			t.Fatalf("bonus %d: expected update_time %d, got %d", i, want, latest[i].UpdateTime)
		}
	}

	none, err := s.ListLatestBonuses(ctx, 0)
	if err != nil {
		t.Fatalf("ListLatestBonuses(0) failed: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}

	byKey, err := s.GetLatestBonusByPublicKey(ctx, pkAlpha)
	if err != nil {
		t.Fatalf("GetLatestBonusByPublicKey failed: %v", err)
	}
	if byKey.UpdateTime != 200 || !byKey.FinalBonus.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("unexpected latest alpha bonus: %+v", byKey)
	}

	byAddr, err := s.GetLatestBonusByAddress(ctx, "Ac")
	if err != nil {
		t.Fatalf("GetLatestBonusByAddress failed: %v", err)
	}
	if byAddr.UpdateTime != 300 || byAddr.Name != "Gamma" {
		t.Fatalf("unexpected latest bonus by address: %+v", byAddr)
	}

	if _, err = s.GetLatestBonusByPublicKey(ctx, pkGamma); !errors.Is(err, ErrBonusNotFound) {
		t.Fatalf("expected ErrBonusNotFound, got %v", err)
	}
	if _, err = s.GetLatestBonusByAddress(ctx, "Azz"); !errors.Is(err, ErrBonusNotFound) {
		t.Fatalf("expected ErrBonusNotFound, got %v", err)
	}
}

func TestPGStore_NetNodes(t *testing.T) {
	ctx, s := setupStore(t)

	seed(t, ctx, s,
		&NetNodeDao{IP: "10.0.0.1", IsActive: true, IsConsensus: true, LastActiveTime: 30},
		&NetNodeDao{IP: "10.0.0.2", IsActive: true, IsConsensus: false, LastActiveTime: 20},
		&NetNodeDao{IP: "10.0.0.3", IsActive: true, IsConsensus: false, LastActiveTime: 10},
		&NetNodeDao{IP: "10.0.0.4", IsActive: false, IsConsensus: false, LastActiveTime: 5},
	)

	all, err := s.ListNetNodes(ctx)
	if err != nil {
		t.Fatalf("ListNetNodes failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 peers, got %d", len(all))
	}

	active, err := s.ListActiveNetNodes(ctx)
	if err != nil {
		t.Fatalf("ListActiveNetNodes failed: %v", err)
	}
	if len(active) != 3 || active[0].IP != "10.0.0.1" {
		t.Fatalf("unexpected active peers: %+v", active)
	}

	sync, err := s.CountSyncNodes(ctx)
	if err != nil {
		t.Fatalf("CountSyncNodes failed: %v", err)
	}
	if sync != 2 {
		t.Fatalf("expected 2 sync nodes, got %d", sync)
	}
}

func TestContainsPattern(t *testing.T) {
	tests := map[string]string{
		"abc":   "%abc%",
		"50%":   `%50\%%`,
		"a_b":   `%a\_b%`,
		`back\`: `%back\\%`,
		"":      "%%",
	}
	for in, want := range tests {
		if got := containsPattern(in); got != want {
			t.Errorf("containsPattern(%q) = %q, want %q", in, got, want)
		}
	}
}
