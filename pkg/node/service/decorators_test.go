package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ontio/explorer-nodes/internal/metrics"
	apperrors "github.com/ontio/explorer-nodes/pkg/app/errors"
	"github.com/ontio/explorer-nodes/pkg/node"
	"github.com/ontio/explorer-nodes/pkg/node/service/mocks"
)

func TestLogService_LogsCompletionAndFailure(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)

	svcMock := mocks.NewService(t)
	svcMock.EXPECT().NetNodes(ctx).Return([]node.NetNodeInfo{{IP: "a"}, {IP: "b"}}, nil).Once()
	svcMock.EXPECT().OnChainInfo(ctx, testPublicKeyA).
		Return(nil, apperrors.ResourceNotFoundError(nil, "node not found")).Once()
	svcMock.EXPECT().CandidateNodeCount(ctx).Return(int64(0), faultErr).Once()

	svc := NewLog(svcMock, zap.New(core))

	_, err := svc.NetNodes(ctx)
	require.NoError(t, err)
	_, err = svc.OnChainInfo(ctx, testPublicKeyA)
	require.Error(t, err)
	_, err = svc.CandidateNodeCount(ctx)
	require.Error(t, err)

	completed := logs.FilterMessage("NetNodes completed").All()
	require.Len(t, completed, 1)
	assert.EqualValues(t, 2, completed[0].ContextMap()["count"])
	assert.Equal(t, serviceName, completed[0].ContextMap()["component"])

	notFound := logs.FilterMessage("OnChainInfo failed").All()
	require.Len(t, notFound, 1)
	assert.Equal(t, zapcore.InfoLevel, notFound[0].Level)
	assert.Equal(t, testPublicKeyA, notFound[0].ContextMap()["public_key"])

	failed := logs.FilterMessage("CandidateNodeCount failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)

	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.DebugLevel).FilterMessageSnippet("started").Len())
}

func TestLogService_MergeFields(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)

	merged := []node.OnChainWithBonus{
		{OnChainDetail: detail(testPublicKeyA, "alpha"), Bonus: &node.Bonus{PublicKey: testPublicKeyA}},
		{OnChainDetail: detail(testPublicKeyB, "beta")},
	}
	svcMock := mocks.NewService(t)
	svcMock.EXPECT().LatestBonusesWithInfos(ctx).Return(merged, nil).Once()

	_, err := NewLog(svcMock, zap.New(core)).LatestBonusesWithInfos(ctx)
	require.NoError(t, err)

	entries := logs.FilterMessage("LatestBonusesWithInfos completed").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 2, entries[0].ContextMap()["count"])
	assert.EqualValues(t, 1, entries[0].ContextMap()["with_bonus"])
}

func TestInstrumentedService_CountsOutcomes(t *testing.T) {
	ctx := context.Background()

	okBefore := testutil.ToFloat64(metrics.NodeQueriesTotal.WithLabelValues("OffChainInfos", metrics.StatusOK))
	missBefore := testutil.ToFloat64(metrics.NodeQueriesTotal.WithLabelValues("OffChainInfo", metrics.StatusNotFound))
	errBefore := testutil.ToFloat64(metrics.NodeQueriesTotal.WithLabelValues("SyncNodeCount", metrics.StatusError))
	matchedBefore := testutil.ToFloat64(metrics.MergedBonusesTotal.WithLabelValues("true"))

	svcMock := mocks.NewService(t)
	svcMock.EXPECT().OffChainInfos(ctx).Return([]node.OffChainInfo{}, nil).Once()
	svcMock.EXPECT().OffChainInfo(ctx, testPublicKeyB).
		Return(nil, apperrors.ResourceNotFoundError(nil, "node not found")).Once()
	svcMock.EXPECT().SyncNodeCount(ctx).Return(int64(0), faultErr).Once()
	svcMock.EXPECT().SearchOnChainWithBonusByName(ctx, "alpha").Return([]node.OnChainWithBonus{
		{OnChainDetail: detail(testPublicKeyA, "alpha"), Bonus: &node.Bonus{}},
	}, nil).Once()

	svc := NewInstrumented(svcMock)

	_, _ = svc.OffChainInfos(ctx)
	_, _ = svc.OffChainInfo(ctx, testPublicKeyB)
	_, _ = svc.SyncNodeCount(ctx)
	_, _ = svc.SearchOnChainWithBonusByName(ctx, "alpha")

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.NodeQueriesTotal.WithLabelValues("OffChainInfos", metrics.StatusOK)))
	assert.Equal(t, missBefore+1, testutil.ToFloat64(metrics.NodeQueriesTotal.WithLabelValues("OffChainInfo", metrics.StatusNotFound)))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.NodeQueriesTotal.WithLabelValues("SyncNodeCount", metrics.StatusError)))
	assert.Equal(t, matchedBefore+1, testutil.ToFloat64(metrics.MergedBonusesTotal.WithLabelValues("true")))
}

func TestInstrumentedService_PassesResultsThrough(t *testing.T) {
	ctx := context.Background()
	bonus := &node.Bonus{PublicKey: testPublicKeyA, UpdateTime: 42}

	svcMock := mocks.NewService(t)
	svcMock.EXPECT().LatestBonusByPublicKey(ctx, testPublicKeyA).Return(bonus, nil).Once()

	got, err := NewInstrumented(svcMock).LatestBonusByPublicKey(ctx, testPublicKeyA)
	require.NoError(t, err)
	assert.Same(t, bonus, got)
}
