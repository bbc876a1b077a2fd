package service

import (
	"context"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/models"
)

const (
	healthUp   = "up"
	healthDown = "down"

	statusOK       = "ok"
	statusDegraded = "degraded"
)

type healthService struct {
	database store.Pinger
	cache    store.Pinger

	logger *logger.Logger
}

func NewHealthService(storages *store.Storages, logger *logger.Logger) HealthService {
	return &healthService{
		database: storages.Database,
		cache:    storages.Cache,
		logger:   logger,
	}
}

// Check pings the database and the cache. ok is false when either is down.
func (s *healthService) Check(ctx context.Context) (models.HealthResponse, bool) {
	log := logger.FromContext(ctx)

	resp := models.HealthResponse{Status: statusOK, Database: healthUp, Cache: healthUp}

	if err := s.database.PingContext(ctx); err != nil {
		log.Err(err).Msg("database is unreachable")
		resp.Database = healthDown
		resp.Status = statusDegraded
	}
	if err := s.cache.PingContext(ctx); err != nil {
		log.Err(err).Msg("cache is unreachable")
		resp.Cache = healthDown
		resp.Status = statusDegraded
	}

	return resp, resp.Status == statusOK
}
