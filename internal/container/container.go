package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edo-marketplace-admin/config"
	"github.com/oksasatya/edo-marketplace-admin/internal/application"
	"github.com/oksasatya/edo-marketplace-admin/internal/infrastructure/memory"
	"github.com/oksasatya/edo-marketplace-admin/pkg/apiclient"
	"github.com/oksasatya/edo-marketplace-admin/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.
// Optional infra (redis, archiver, publisher, es) stays nil when unconfigured.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	apiClient   *apiclient.Client
	archiver    *helpers.GCSArchiver
	rabbitPub   *helpers.RabbitPublisher
	esClient    *elasticsearch.Client
	activity    application.ActivityRecorder
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.Load()
	}
	return cfg
}
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger {
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger
}
func SetRedis(r *redis.Client)                   { redisClient = r }
func GetRedis() *redis.Client                    { return redisClient }
func SetAPIClient(c *apiclient.Client)           { apiClient = c }
func GetAPIClient() *apiclient.Client            { return apiClient }
func SetArchiver(a *helpers.GCSArchiver)         { archiver = a }
func SetRabbitPub(p *helpers.RabbitPublisher)    { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher     { return rabbitPub }
func SetES(c *elasticsearch.Client)              { esClient = c }
func GetES() *elasticsearch.Client               { return esClient }
func SetActivity(a application.ActivityRecorder) { activity = a }

// GetActivity falls back to an in-process log so mutations are always recorded.
func GetActivity() application.ActivityRecorder {
	if activity == nil {
		activity = memory.NewActivityLog(0)
	}
	return activity
}

// Deps collects the shared service dependencies. Nil concrete pointers are
// kept out of the interfaces so services see a true nil.
func Deps() application.Deps {
	d := application.Deps{
		API:      apiClient,
		Activity: GetActivity(),
		Logger:   GetLogger(),
	}
	if archiver != nil {
		d.Archiver = archiver
	}
	if rabbitPub != nil {
		d.Publisher = rabbitPub
	}
	return d
}
