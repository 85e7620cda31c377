package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/ontio/explorer-nodes/pkg/app/errors"
	"github.com/ontio/explorer-nodes/pkg/node"
)

const serviceName = "NodeService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the node Service.
// It logs method entry/exit, duration, result sizes and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) OnChainInfos(ctx context.Context) (infos []node.OnChainInfo, err error) {
	defer ls.trace("OnChainInfos")(&err, func() []zap.Field { return []zap.Field{zap.Int("count", len(infos))} })
	return ls.svc.OnChainInfos(ctx)
}

func (ls *logService) OnChainInfo(ctx context.Context, publicKey string) (info *node.OnChainInfo, err error) {
	defer ls.trace("OnChainInfo", zap.String("public_key", publicKey))(&err, nil)
	return ls.svc.OnChainInfo(ctx, publicKey)
}

func (ls *logService) OffChainInfos(ctx context.Context) (infos []node.OffChainInfo, err error) {
	defer ls.trace("OffChainInfos")(&err, func() []zap.Field { return []zap.Field{zap.Int("count", len(infos))} })
	return ls.svc.OffChainInfos(ctx)
}

func (ls *logService) OffChainInfo(ctx context.Context, publicKey string) (info *node.OffChainInfo, err error) {
	defer ls.trace("OffChainInfo", zap.String("public_key", publicKey))(&err, nil)
	return ls.svc.OffChainInfo(ctx, publicKey)
}

func (ls *logService) BonusHistories(ctx context.Context) (bonuses []node.Bonus, err error) {
	defer ls.trace("BonusHistories")(&err, func() []zap.Field { return []zap.Field{zap.Int("count", len(bonuses))} })
	return ls.svc.BonusHistories(ctx)
}

func (ls *logService) LatestBonusByPublicKey(ctx context.Context, publicKey string) (bonus *node.Bonus, err error) {
	defer ls.trace("LatestBonusByPublicKey", zap.String("public_key", publicKey))(&err, func() []zap.Field {
		return bonusFields(bonus)
	})
	return ls.svc.LatestBonusByPublicKey(ctx, publicKey)
}

func (ls *logService) LatestBonusByAddress(ctx context.Context, address string) (bonus *node.Bonus, err error) {
	defer ls.trace("LatestBonusByAddress", zap.String("address", address))(&err, func() []zap.Field {
		return bonusFields(bonus)
	})
	return ls.svc.LatestBonusByAddress(ctx, address)
}

func (ls *logService) LatestBonusesWithInfos(ctx context.Context) (merged []node.OnChainWithBonus, err error) {
	defer ls.trace("LatestBonusesWithInfos")(&err, func() []zap.Field { return mergeFields(merged) })
	return ls.svc.LatestBonusesWithInfos(ctx)
}

func (ls *logService) SearchOnChainWithBonusByName(ctx context.Context, name string) (merged []node.OnChainWithBonus, err error) {
	defer ls.trace("SearchOnChainWithBonusByName", zap.String("name", name))(&err, func() []zap.Field { return mergeFields(merged) })
	return ls.svc.SearchOnChainWithBonusByName(ctx, name)
}

func (ls *logService) ActiveNetNodes(ctx context.Context) (nodes []node.NetNodeInfo, err error) {
	defer ls.trace("ActiveNetNodes")(&err, func() []zap.Field { return []zap.Field{zap.Int("count", len(nodes))} })
	return ls.svc.ActiveNetNodes(ctx)
}

func (ls *logService) NetNodes(ctx context.Context) (nodes []node.NetNodeInfo, err error) {
	defer ls.trace("NetNodes")(&err, func() []zap.Field { return []zap.Field{zap.Int("count", len(nodes))} })
	return ls.svc.NetNodes(ctx)
}

func (ls *logService) SyncNodeCount(ctx context.Context) (n int64, err error) {
	defer ls.trace("SyncNodeCount")(&err, func() []zap.Field { return []zap.Field{zap.Int64("count", n)} })
	return ls.svc.SyncNodeCount(ctx)
}

func (ls *logService) CandidateNodeCount(ctx context.Context) (n int64, err error) {
	defer ls.trace("CandidateNodeCount")(&err, func() []zap.Field { return []zap.Field{zap.Int64("count", n)} })
	return ls.svc.CandidateNodeCount(ctx)
}

func (ls *logService) ConsensusNodeCount(ctx context.Context) (n int64, err error) {
	defer ls.trace("ConsensusNodeCount")(&err, func() []zap.Field { return []zap.Field{zap.Int64("count", n)} })
	return ls.svc.ConsensusNodeCount(ctx)
}

// trace logs method entry and returns the exit logger. The exit logger reads
// the named error result through errp; result is only called on success.
func (ls *logService) trace(method string, fields ...zap.Field) func(errp *error, result func() []zap.Field) {
	start := time.Now()
	base := append([]zap.Field{
		zap.String("component", serviceName),
		zap.String("method", method),
	}, fields...)

	ls.logger.Debug(method+" started", base...)

	return func(errp *error, result func() []zap.Field) {
		exit := append(base, zap.Duration("duration", time.Since(start)))

		if err := *errp; err != nil {
			exit = append(exit, zap.Error(err))
			if apperrors.IsInternalError(err) {
				ls.logger.Error(method+" failed", exit...)
			} else {
				ls.logger.Info(method+" failed", exit...)
			}
			return
		}

		if result != nil {
			exit = append(exit, result()...)
		}
		ls.logger.Debug(method+" completed", exit...)
	}
}

func mergeFields(merged []node.OnChainWithBonus) []zap.Field {
	matched := 0
	for i := range merged {
		if merged[i].Bonus != nil {
			matched++
		}
	}
	return []zap.Field{
		zap.Int("count", len(merged)),
		zap.Int("with_bonus", matched),
	}
}

func bonusFields(bonus *node.Bonus) []zap.Field {
	if bonus == nil {
		return nil
	}
	return []zap.Field{zap.Int64("update_time", bonus.UpdateTime)}
}
