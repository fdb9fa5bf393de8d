package router

import (
	"context"
	"expvar"
	"sync"

	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/internal/container"
	"github.com/oksasatya/edo-marketplace-admin/internal/infrastructure/memory"
	handlers "github.com/oksasatya/edo-marketplace-admin/internal/interface/http"
	"github.com/oksasatya/edo-marketplace-admin/internal/mockdata"
	"github.com/oksasatya/edo-marketplace-admin/internal/router/modules"
)

// viewLoader is implemented by every service backed by a REST view.
type viewLoader interface {
	Load(ctx context.Context) app.LoadResult
}

var (
	loadsMu     sync.RWMutex
	lastLoads   []app.LoadResult
	publishOnce sync.Once
)

// Services holds the application services built for one registry.
type Services struct {
	Users        *app.UserService
	Products     *app.ProductService
	Transactions *app.TransactionService
	Categories   *app.CategoryService
	Festivals    *app.FestivalService
	Analytics    *app.AnalyticsService
	Dashboard    *app.DashboardService
	Settings     *app.SettingsService
	Profile      *app.ProfileService
	Activity     *app.ActivityService
}

func buildServices() Services {
	cfg := container.GetConfig()
	deps := container.Deps()

	settings := app.NewSettingsService(memory.NewSettingsRepository(mockdata.Settings()), deps)
	return Services{
		Users:        app.NewUserService(memory.NewUserRepository(nil), cfg, deps),
		Products:     app.NewProductService(memory.NewProductRepository(nil), settings, deps),
		Transactions: app.NewTransactionService(memory.NewTransactionRepository(nil), settings, deps),
		Categories:   app.NewCategoryService(memory.NewCategoryRepository(nil), deps),
		Festivals:    app.NewFestivalService(memory.NewFestivalRepository(nil), cfg, deps),
		Analytics:    app.NewAnalyticsService(deps),
		Dashboard:    app.NewDashboardService(container.GetRedis(), cfg.MetricsCacheTTL, deps),
		Settings:     settings,
		Profile:      app.NewProfileService(memory.NewProfileRepository(mockdata.AdminProfile()), deps),
		Activity:     app.NewActivityService(deps),
	}
}

// LoadViews seeds every view store, falling back to mock data per view.
func LoadViews(ctx context.Context, s Services) []app.LoadResult {
	views := []viewLoader{s.Users, s.Products, s.Transactions, s.Categories, s.Festivals}
	out := make([]app.LoadResult, 0, len(views))
	for _, v := range views {
		res := v.Load(ctx)
		container.GetLogger().WithFields(logrus.Fields{
			"view":   res.View,
			"source": res.Source,
			"count":  res.Count,
		}).Info("view loaded")
		out = append(out, res)
	}

	loadsMu.Lock()
	lastLoads = out
	loadsMu.Unlock()
	return out
}

func publishLoads() {
	publishOnce.Do(func() {
		expvar.Publish("view_loads", expvar.Func(func() any {
			loadsMu.RLock()
			defer loadsMu.RUnlock()
			return lastLoads
		}))
	})
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(ctx context.Context, r *Registry) Services {
	s := buildServices()
	LoadViews(ctx, s)

	logger := container.GetLogger()
	r.Add(modules.NewUserModule(handlers.NewUserHandler(s.Users, s.Profile, logger)))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(s.Products, logger)))
	r.Add(modules.NewTransactionModule(handlers.NewTransactionHandler(s.Transactions, logger)))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(s.Categories, logger)))
	r.Add(modules.NewFestivalModule(handlers.NewFestivalHandler(s.Festivals, logger)))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(s.Dashboard, s.Analytics, logger)))
	r.Add(modules.NewSettingsModule(handlers.NewSettingsHandler(s.Settings, s.Profile, logger)))
	r.Add(modules.NewReferenceModule(handlers.NewReferenceHandler(s.Activity, logger)))

	if container.GetConfig().DebugMetricsEnabled {
		publishLoads()
		r.Add(modules.NewDebugModule())
	}
	return s
}
