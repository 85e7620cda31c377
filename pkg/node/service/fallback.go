package service

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ontio/explorer-nodes/internal/metrics"
	apperrors "github.com/ontio/explorer-nodes/pkg/app/errors"
	"github.com/ontio/explorer-nodes/pkg/node"
)

// faultCount is returned by count operations in place of an error.
const faultCount int64 = -1

// fallbackService never returns an error: faults are logged and answered
// with an empty slice, a zero-value record or faultCount.
type fallbackService struct {
	svc    Service
	logger *zap.Logger
}

// NewFallback wraps svc so that callers see empty defaults instead of errors.
// Bulk listings are logged at error level, every other operation at warn.
// Keyed lookups that match nothing also return a zero-value record.
func NewFallback(svc Service, logger *zap.Logger) Service {
	return &fallbackService{
		svc:    svc,
		logger: logger,
	}
}

func (f *fallbackService) OnChainInfos(ctx context.Context) ([]node.OnChainInfo, error) {
	infos, err := f.svc.OnChainInfos(ctx)
	return orEmpty(f, "OnChainInfos", zapcore.ErrorLevel, infos, err)
}

func (f *fallbackService) OnChainInfo(ctx context.Context, publicKey string) (*node.OnChainInfo, error) {
	info, err := f.svc.OnChainInfo(ctx, publicKey)
	return orZero(f, "OnChainInfo", info, err, zap.String("public_key", publicKey))
}

func (f *fallbackService) OffChainInfos(ctx context.Context) ([]node.OffChainInfo, error) {
	infos, err := f.svc.OffChainInfos(ctx)
	return orEmpty(f, "OffChainInfos", zapcore.ErrorLevel, infos, err)
}

func (f *fallbackService) OffChainInfo(ctx context.Context, publicKey string) (*node.OffChainInfo, error) {
	info, err := f.svc.OffChainInfo(ctx, publicKey)
	return orZero(f, "OffChainInfo", info, err, zap.String("public_key", publicKey))
}

func (f *fallbackService) BonusHistories(ctx context.Context) ([]node.Bonus, error) {
	bonuses, err := f.svc.BonusHistories(ctx)
	return orEmpty(f, "BonusHistories", zapcore.WarnLevel, bonuses, err)
}

func (f *fallbackService) LatestBonusByPublicKey(ctx context.Context, publicKey string) (*node.Bonus, error) {
	bonus, err := f.svc.LatestBonusByPublicKey(ctx, publicKey)
	return orZero(f, "LatestBonusByPublicKey", bonus, err, zap.String("public_key", publicKey))
}

func (f *fallbackService) LatestBonusByAddress(ctx context.Context, address string) (*node.Bonus, error) {
	bonus, err := f.svc.LatestBonusByAddress(ctx, address)
	return orZero(f, "LatestBonusByAddress", bonus, err, zap.String("address", address))
}

func (f *fallbackService) LatestBonusesWithInfos(ctx context.Context) ([]node.OnChainWithBonus, error) {
	merged, err := f.svc.LatestBonusesWithInfos(ctx)
	return orEmpty(f, "LatestBonusesWithInfos", zapcore.ErrorLevel, merged, err)
}

func (f *fallbackService) SearchOnChainWithBonusByName(ctx context.Context, name string) ([]node.OnChainWithBonus, error) {
	merged, err := f.svc.SearchOnChainWithBonusByName(ctx, name)
	return orEmpty(f, "SearchOnChainWithBonusByName", zapcore.WarnLevel, merged, err, zap.String("name", name))
}

func (f *fallbackService) ActiveNetNodes(ctx context.Context) ([]node.NetNodeInfo, error) {
	nodes, err := f.svc.ActiveNetNodes(ctx)
	return orEmpty(f, "ActiveNetNodes", zapcore.WarnLevel, nodes, err)
}

func (f *fallbackService) NetNodes(ctx context.Context) ([]node.NetNodeInfo, error) {
	nodes, err := f.svc.NetNodes(ctx)
	return orEmpty(f, "NetNodes", zapcore.WarnLevel, nodes, err)
}

func (f *fallbackService) SyncNodeCount(ctx context.Context) (int64, error) {
	n, err := f.svc.SyncNodeCount(ctx)
	return orFaultCount(f, "SyncNodeCount", n, err)
}

func (f *fallbackService) CandidateNodeCount(ctx context.Context) (int64, error) {
	n, err := f.svc.CandidateNodeCount(ctx)
	return orFaultCount(f, "CandidateNodeCount", n, err)
}

func (f *fallbackService) ConsensusNodeCount(ctx context.Context) (int64, error) {
	n, err := f.svc.ConsensusNodeCount(ctx)
	return orFaultCount(f, "ConsensusNodeCount", n, err)
}

func (f *fallbackService) degrade(method string, lvl zapcore.Level, err error, fields ...zap.Field) {
	metrics.NodeQueryFallbacksTotal.WithLabelValues(method).Inc()
	fields = append(fields,
		zap.String("method", method),
		zap.Error(err),
	)
	f.logger.Log(lvl, method+" failed, serving empty result", fields...)
}

func orEmpty[T any](f *fallbackService, method string, lvl zapcore.Level, v []T, err error, fields ...zap.Field) ([]T, error) {
	if err != nil {
		f.degrade(method, lvl, err, fields...)
		return []T{}, nil
	}
	return nonNil(v), nil
}

func orZero[T any](f *fallbackService, method string, v *T, err error, fields ...zap.Field) (*T, error) {
	if err != nil {
		if apperrors.Is(err, apperrors.CategoryResourceNotFound) {
			f.logger.Debug(method+" matched nothing", append(fields, zap.String("method", method))...)
		} else {
			f.degrade(method, zapcore.WarnLevel, err, fields...)
		}
		return new(T), nil
	}
	if v == nil {
		return new(T), nil
	}
	return v, nil
}

func orFaultCount(f *fallbackService, method string, n int64, err error) (int64, error) {
	if err != nil {
		f.degrade(method, zapcore.WarnLevel, err)
		return faultCount, nil
	}
	return n, nil
}
