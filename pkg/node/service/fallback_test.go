package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/ontio/explorer-nodes/pkg/app/errors"
	"github.com/ontio/explorer-nodes/pkg/node"
	"github.com/ontio/explorer-nodes/pkg/node/service/mocks"
)

func newObservedFallback(t *testing.T, svc Service) (Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFallback(svc, zap.New(core)), logs
}

var faultErr = apperrors.DependencyFailureError(errStoreDown, "node store unavailable")

func TestFallback_ListsDegradeToEmpty(t *testing.T) {
	ctx := context.Background()

	svcMock := mocks.NewService(t)
	svcMock.EXPECT().OnChainInfos(ctx).Return(nil, faultErr).Once()
	svcMock.EXPECT().OffChainInfos(ctx).Return(nil, faultErr).Once()
	svcMock.EXPECT().BonusHistories(ctx).Return(nil, faultErr).Once()
	svcMock.EXPECT().LatestBonusesWithInfos(ctx).Return(nil, faultErr).Once()
	svcMock.EXPECT().SearchOnChainWithBonusByName(ctx, "alpha").Return(nil, faultErr).Once()
	svcMock.EXPECT().ActiveNetNodes(ctx).Return(nil, faultErr).Once()
	svcMock.EXPECT().NetNodes(ctx).Return(nil, faultErr).Once()

	fb, logs := newObservedFallback(t, svcMock)

	onChain, err := fb.OnChainInfos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []node.OnChainInfo{}, onChain)

	offChain, err := fb.OffChainInfos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []node.OffChainInfo{}, offChain)

	bonuses, err := fb.BonusHistories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []node.Bonus{}, bonuses)

	merged, err := fb.LatestBonusesWithInfos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []node.OnChainWithBonus{}, merged)

	searched, err := fb.SearchOnChainWithBonusByName(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, []node.OnChainWithBonus{}, searched)

	active, err := fb.ActiveNetNodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []node.NetNodeInfo{}, active)

	all, err := fb.NetNodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []node.NetNodeInfo{}, all)

	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, 4, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterField(zap.String("method", "LatestBonusesWithInfos")).FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, 1, logs.FilterField(zap.String("name", "alpha")).FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestFallback_CountsDegradeToMinusOne(t *testing.T) {
	ctx := context.Background()

	svcMock := mocks.NewService(t)
	svcMock.EXPECT().SyncNodeCount(ctx).Return(int64(0), faultErr).Once()
	svcMock.EXPECT().CandidateNodeCount(ctx).Return(int64(0), faultErr).Once()
	svcMock.EXPECT().ConsensusNodeCount(ctx).Return(int64(0), nil).Once()

	fb, logs := newObservedFallback(t, svcMock)

	n, err := fb.SyncNodeCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), n)

	n, err = fb.CandidateNodeCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), n)

	n, err = fb.ConsensusNodeCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "a true zero count must not be turned into -1")

	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestFallback_KeyedLookupsDegradeToZeroValue(t *testing.T) {
	ctx := context.Background()
	notFound := apperrors.ResourceNotFoundError(nil, "node not found")

	svcMock := mocks.NewService(t)
	svcMock.EXPECT().OnChainInfo(ctx, testPublicKeyA).Return(nil, faultErr).Once()
	svcMock.EXPECT().OffChainInfo(ctx, testPublicKeyA).Return(nil, notFound).Once()
	svcMock.EXPECT().LatestBonusByPublicKey(ctx, testPublicKeyA).Return(nil, faultErr).Once()
	svcMock.EXPECT().LatestBonusByAddress(ctx, "Aaddr").Return(nil, notFound).Once()

	fb, logs := newObservedFallback(t, svcMock)

	onChain, err := fb.OnChainInfo(ctx, testPublicKeyA)
	require.NoError(t, err)
	assert.Equal(t, &node.OnChainInfo{}, onChain)

	offChain, err := fb.OffChainInfo(ctx, testPublicKeyA)
	require.NoError(t, err)
	assert.Equal(t, &node.OffChainInfo{}, offChain)

	byKey, err := fb.LatestBonusByPublicKey(ctx, testPublicKeyA)
	require.NoError(t, err)
	assert.Equal(t, &node.Bonus{}, byKey)

	byAddr, err := fb.LatestBonusByAddress(ctx, "Aaddr")
	require.NoError(t, err)
	assert.Equal(t, &node.Bonus{}, byAddr)

	// only real faults are warnings; misses are debug
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.DebugLevel).Len())
}

func TestFallback_PassesThroughSuccess(t *testing.T) {
	ctx := context.Background()
	info := &node.OnChainInfo{PublicKey: testPublicKeyA, Name: "alpha"}
	peers := []node.NetNodeInfo{{IP: "10.0.0.1"}}

	svcMock := mocks.NewService(t)
	svcMock.EXPECT().OnChainInfo(ctx, testPublicKeyA).Return(info, nil).Once()
	svcMock.EXPECT().NetNodes(ctx).Return(peers, nil).Once()

	fb, logs := newObservedFallback(t, svcMock)

	got, err := fb.OnChainInfo(ctx, testPublicKeyA)
	require.NoError(t, err)
	assert.Same(t, info, got)

	all, err := fb.NetNodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, peers, all)

	assert.Zero(t, logs.Len())
}

func TestFallback_OverRealService_NameFilterFault(t *testing.T) {
	ctx := context.Background()

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().SearchOnChainDetailsByName(ctx, "alpha").
		Return([]node.OnChainDetail{detail(testPublicKeyA, "alpha")}, nil).Once()
	storeMock.EXPECT().SearchBonusesByName(ctx, "alpha").Return(nil, errStoreDown).Once()

	fb, _ := newObservedFallback(t, NewService(storeMock))

	got, err := fb.SearchOnChainWithBonusByName(ctx, "alpha")
	require.NoError(t, err)
	assert.Empty(t, got, "a fault in either query must yield an empty result")
	assert.NotNil(t, got)
}
