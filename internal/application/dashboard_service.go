package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
	"github.com/oksasatya/edo-marketplace-admin/pkg/apiclient"
	"github.com/oksasatya/edo-marketplace-admin/pkg/helpers"
)

const (
	metricsPath     = "/dashboard/metrics"
	metricsCacheKey = "dashboard:metrics"

	// MetricsLoadError is shown when the metrics request fails.
	MetricsLoadError = "Failed to load dashboard metrics"
)

// MetricsResult is the dashboard payload plus where it came from.
type MetricsResult struct {
	Metrics entity.DashboardMetrics
	Source  string // api, cache or mock
	Error   string
}

const SourceCache = "cache"

type DashboardService struct {
	Redis    *redis.Client
	CacheTTL time.Duration
	Deps
}

func NewDashboardService(rdb *redis.Client, ttl time.Duration, deps Deps) *DashboardService {
	return &DashboardService{Redis: rdb, CacheTTL: ttl, Deps: deps}
}

// Metrics serves cached metrics when present, otherwise fetches them and
// falls back to mock metrics on failure. Mock metrics are never cached.
func (s *DashboardService) Metrics(ctx context.Context) MetricsResult {
	if s.Redis != nil {
		var cached entity.DashboardMetrics
		ok, err := helpers.RedisGetJSON(ctx, s.Redis, metricsCacheKey, &cached)
		if err != nil {
			s.log().WithError(err).Warn("metrics cache read failed")
		}
		if ok {
			return MetricsResult{Metrics: cached, Source: SourceCache}
		}
	}

	res := apiclient.FetchWithFallback(ctx, s.API, metricsPath, mockdata.DashboardMetrics())
	if res.Fallback {
		s.log().WithError(res.Err).Debug("dashboard metrics fallback")
		return MetricsResult{Metrics: res.Data, Source: SourceMock, Error: MetricsLoadError}
	}

	if s.Redis != nil && s.CacheTTL > 0 {
		if err := helpers.RedisSetJSON(ctx, s.Redis, metricsCacheKey, res.Data, s.CacheTTL); err != nil {
			s.log().WithError(err).Warn("metrics cache write failed")
		}
	}
	return MetricsResult{Metrics: res.Data, Source: SourceAPI}
}

// Refresh drops the cached metrics and loads them again.
func (s *DashboardService) Refresh(ctx context.Context) MetricsResult {
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, metricsCacheKey); err != nil {
			s.log().WithError(err).Warn("metrics cache delete failed")
		}
	}
	return s.Metrics(ctx)
}
