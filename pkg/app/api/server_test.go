package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ontio/explorer-nodes/pkg/config"
	"github.com/ontio/explorer-nodes/pkg/node"
	"github.com/ontio/explorer-nodes/pkg/node/service/mocks"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func testConfig(monitoring bool) *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{RequestTimeout: 5 * time.Second},
		Monitoring: config.MonitoringConfig{Enabled: monitoring},
	}
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter_HealthAndReady(t *testing.T) {
	healthy := NewRouter(mocks.NewService(t), pingerFunc(func(context.Context) error { return nil }), testConfig(false), zap.NewNop())

	rec := serve(t, healthy, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = serve(t, healthy, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)

	down := NewRouter(mocks.NewService(t), pingerFunc(func(context.Context) error { return errors.New("down") }), testConfig(false), zap.NewNop())
	rec = serve(t, down, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_MetricsToggle(t *testing.T) {
	ping := pingerFunc(func(context.Context) error { return nil })

	on := NewRouter(mocks.NewService(t), ping, testConfig(true), zap.NewNop())
	rec := serve(t, on, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))

	off := NewRouter(mocks.NewService(t), ping, testConfig(false), zap.NewNop())
	rec = serve(t, off, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MountsNodeRoutes(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ActiveNetNodes(mock.Anything).Return([]node.NetNodeInfo{{IP: "10.0.0.1", IsActive: true}}, nil).Once()

	r := NewRouter(svc, pingerFunc(func(context.Context) error { return nil }), testConfig(false), zap.NewNop())

	rec := serve(t, r, "/v2/nodes/net/active")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ip":"10.0.0.1"`)
}

func TestNewNodeService_DegradeToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("degrade", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.EXPECT().CountCandidateNodes(ctx).Return(int64(0), errors.New("down")).Once()

		svc := NewNodeService(store, config.NodesConfig{DegradeOnError: true}, zap.NewNop())
		n, err := svc.CandidateNodeCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(-1), n)
	})

	t.Run("strict", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.EXPECT().CountCandidateNodes(ctx).Return(int64(0), errors.New("down")).Once()

		svc := NewNodeService(store, config.NodesConfig{DegradeOnError: false}, zap.NewNop())
		_, err := svc.CandidateNodeCount(ctx)
		assert.Error(t, err)
	})
}
