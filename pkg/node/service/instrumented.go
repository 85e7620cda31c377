package service

import (
	"context"
	"strconv"
	"time"

	"github.com/ontio/explorer-nodes/internal/metrics"
	apperrors "github.com/ontio/explorer-nodes/pkg/app/errors"
	"github.com/ontio/explorer-nodes/pkg/node"
)

// instrumentedService records query counts and latencies for every call.
type instrumentedService struct {
	svc Service
}

// NewInstrumented wraps svc with prometheus query metrics.
func NewInstrumented(svc Service) Service {
	return &instrumentedService{svc: svc}
}

func (is *instrumentedService) OnChainInfos(ctx context.Context) (infos []node.OnChainInfo, err error) {
	defer observe("OnChainInfos", time.Now(), &err)
	return is.svc.OnChainInfos(ctx)
}

func (is *instrumentedService) OnChainInfo(ctx context.Context, publicKey string) (info *node.OnChainInfo, err error) {
	defer observe("OnChainInfo", time.Now(), &err)
	return is.svc.OnChainInfo(ctx, publicKey)
}

func (is *instrumentedService) OffChainInfos(ctx context.Context) (infos []node.OffChainInfo, err error) {
	defer observe("OffChainInfos", time.Now(), &err)
	return is.svc.OffChainInfos(ctx)
}

func (is *instrumentedService) OffChainInfo(ctx context.Context, publicKey string) (info *node.OffChainInfo, err error) {
	defer observe("OffChainInfo", time.Now(), &err)
	return is.svc.OffChainInfo(ctx, publicKey)
}

func (is *instrumentedService) BonusHistories(ctx context.Context) (bonuses []node.Bonus, err error) {
	defer observe("BonusHistories", time.Now(), &err)
	return is.svc.BonusHistories(ctx)
}

func (is *instrumentedService) LatestBonusByPublicKey(ctx context.Context, publicKey string) (bonus *node.Bonus, err error) {
	defer observe("LatestBonusByPublicKey", time.Now(), &err)
	return is.svc.LatestBonusByPublicKey(ctx, publicKey)
}

func (is *instrumentedService) LatestBonusByAddress(ctx context.Context, address string) (bonus *node.Bonus, err error) {
	defer observe("LatestBonusByAddress", time.Now(), &err)
	return is.svc.LatestBonusByAddress(ctx, address)
}

func (is *instrumentedService) LatestBonusesWithInfos(ctx context.Context) (merged []node.OnChainWithBonus, err error) {
	defer observe("LatestBonusesWithInfos", time.Now(), &err)
	merged, err = is.svc.LatestBonusesWithInfos(ctx)
	countMatches(merged)
	return merged, err
}

func (is *instrumentedService) SearchOnChainWithBonusByName(ctx context.Context, name string) (merged []node.OnChainWithBonus, err error) {
	defer observe("SearchOnChainWithBonusByName", time.Now(), &err)
	merged, err = is.svc.SearchOnChainWithBonusByName(ctx, name)
	countMatches(merged)
	return merged, err
}

func (is *instrumentedService) ActiveNetNodes(ctx context.Context) (nodes []node.NetNodeInfo, err error) {
	defer observe("ActiveNetNodes", time.Now(), &err)
	return is.svc.ActiveNetNodes(ctx)
}

func (is *instrumentedService) NetNodes(ctx context.Context) (nodes []node.NetNodeInfo, err error) {
	defer observe("NetNodes", time.Now(), &err)
	return is.svc.NetNodes(ctx)
}

func (is *instrumentedService) SyncNodeCount(ctx context.Context) (n int64, err error) {
	defer observe("SyncNodeCount", time.Now(), &err)
	return is.svc.SyncNodeCount(ctx)
}

func (is *instrumentedService) CandidateNodeCount(ctx context.Context) (n int64, err error) {
	defer observe("CandidateNodeCount", time.Now(), &err)
	return is.svc.CandidateNodeCount(ctx)
}

func (is *instrumentedService) ConsensusNodeCount(ctx context.Context) (n int64, err error) {
	defer observe("ConsensusNodeCount", time.Now(), &err)
	return is.svc.ConsensusNodeCount(ctx)
}

func observe(operation string, start time.Time, errp *error) {
	metrics.NodeQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.NodeQueriesTotal.WithLabelValues(operation, outcome(*errp)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.StatusOK
	case apperrors.Is(err, apperrors.CategoryResourceNotFound):
		return metrics.StatusNotFound
	default:
		return metrics.StatusError
	}
}

func countMatches(merged []node.OnChainWithBonus) {
	for i := range merged {
		metrics.MergedBonusesTotal.WithLabelValues(strconv.FormatBool(merged[i].Bonus != nil)).Inc()
	}
}
