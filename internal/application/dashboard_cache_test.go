package application

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/pkg/apiclient"
	"github.com/oksasatya/edo-marketplace-admin/pkg/helpers"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

// metricsServer answers /dashboard/metrics with totalUsers, or 500 when fail is set.
func metricsServer(t *testing.T, totalUsers int, fail *atomic.Bool, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalUsers":` + strconv.Itoa(totalUsers) + `,"activeListings":1300,"categoriesCount":7,"totalRevenue":500000}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDashboardServiceCachesRemoteMetrics(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniRedis(t)
	var fail atomic.Bool
	var hits atomic.Int32
	srv := metricsServer(t, 3001, &fail, &hits)

	deps, _ := testDeps()
	deps.API = apiclient.New(srv.URL, time.Second, nil)
	s := NewDashboardService(rdb, time.Minute, deps)

	res := s.Metrics(ctx)
	require.Equal(t, SourceAPI, res.Source)
	assert.Equal(t, 3001, res.Metrics.TotalUsers)
	require.True(t, mr.Exists(metricsCacheKey))
	assert.Equal(t, time.Minute, mr.TTL(metricsCacheKey))

	var cached entity.DashboardMetrics
	ok, err := helpers.RedisGetJSON(ctx, rdb, metricsCacheKey, &cached)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3001, cached.TotalUsers)

	// served from cache even though the remote now fails
	fail.Store(true)
	res = s.Metrics(ctx)
	assert.Equal(t, SourceCache, res.Source)
	assert.Empty(t, res.Error)
	assert.Equal(t, 3001, res.Metrics.TotalUsers)
	assert.EqualValues(t, 1, hits.Load())
}

func TestDashboardServiceNeverCachesMockMetrics(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniRedis(t)
	var fail atomic.Bool
	var hits atomic.Int32
	fail.Store(true)
	srv := metricsServer(t, 3001, &fail, &hits)

	deps, _ := testDeps()
	deps.API = apiclient.New(srv.URL, time.Second, nil)
	s := NewDashboardService(rdb, time.Minute, deps)

	res := s.Metrics(ctx)
	assert.Equal(t, SourceMock, res.Source)
	assert.Equal(t, MetricsLoadError, res.Error)
	assert.False(t, mr.Exists(metricsCacheKey))

	res = s.Metrics(ctx)
	assert.Equal(t, SourceMock, res.Source)
	assert.EqualValues(t, 2, hits.Load())
}

func TestDashboardServiceRefreshDropsCache(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniRedis(t)
	var fail atomic.Bool
	var hits atomic.Int32
	srv := metricsServer(t, 3001, &fail, &hits)

	deps, _ := testDeps()
	deps.API = apiclient.New(srv.URL, time.Second, nil)
	s := NewDashboardService(rdb, time.Minute, deps)

	require.NoError(t, helpers.RedisSetJSON(ctx, rdb, metricsCacheKey, entity.DashboardMetrics{TotalUsers: 1}, time.Minute))
	assert.Equal(t, SourceCache, s.Metrics(ctx).Source)
	assert.EqualValues(t, 0, hits.Load())

	res := s.Refresh(ctx)
	assert.Equal(t, SourceAPI, res.Source)
	assert.Equal(t, 3001, res.Metrics.TotalUsers)
	assert.EqualValues(t, 1, hits.Load())

	// a failing refresh removes the stale entry and serves mock data
	fail.Store(true)
	res = s.Refresh(ctx)
	assert.Equal(t, SourceMock, res.Source)
	assert.False(t, mr.Exists(metricsCacheKey))
}
