package api

import (
	"time"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/config"
	"eventcrew/rollcall/internal/db"
	"eventcrew/rollcall/internal/metrics"
	"eventcrew/rollcall/internal/services"
	"eventcrew/rollcall/internal/store"
	"eventcrew/rollcall/internal/store/dbstore"
	"eventcrew/rollcall/internal/store/memstore"
)

type Services struct {
	Events        *services.EventService
	Sessions      *common.SessionService
	CheckInTokens *services.CheckInTokenService
}

type Dependencies struct {
	Cfg      *config.Config
	Store    store.Store
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires the configured store backend, session cache, and
// services together.
func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	var st store.Store
	switch cfg.StoreBackend {
	case "postgres":
		st = dbstore.New(db.DB)
	default:
		st = memstore.New()
	}

	var sessionCache common.CacheInterface
	if cfg.AuthMode == "session" && cfg.SessionBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(
			common.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword))
		if err != nil {
			return nil, err
		}
		sessionCache = redisCache
	} else {
		sessionCache = common.NewCacheService(3600, 600)
	}

	svcs := &Services{
		Events:        services.NewEventService(st),
		Sessions:      common.NewSessionService(sessionCache, 7*24*time.Hour),
		CheckInTokens: services.NewCheckInTokenService([]byte(cfg.CheckInTokenSecret), 24*time.Hour),
	}

	return &Dependencies{
		Cfg:      cfg,
		Store:    st,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
