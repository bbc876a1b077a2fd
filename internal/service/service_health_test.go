package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/models"
)

func TestHealthService_Check(t *testing.T) {
	down := errors.New("connection refused")

	tests := []struct {
		name     string
		dbErr    error
		cacheErr error
		want     models.HealthResponse
		wantOK   bool
	}{
		{
			name:   "all up",
			want:   models.HealthResponse{Status: "ok", Database: "up", Cache: "up"},
			wantOK: true,
		},
		{
			name:  "database down",
			dbErr: down,
			want:  models.HealthResponse{Status: "degraded", Database: "down", Cache: "up"},
		},
		{
			name:     "cache down",
			cacheErr: down,
			want:     models.HealthResponse{Status: "degraded", Database: "up", Cache: "down"},
		},
		{
			name:     "both down",
			dbErr:    down,
			cacheErr: down,
			want:     models.HealthResponse{Status: "degraded", Database: "down", Cache: "down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, storages := newTestStorages(gomock.NewController(t))
			m.database.EXPECT().PingContext(gomock.Any()).Return(tt.dbErr)
			m.cache.EXPECT().PingContext(gomock.Any()).Return(tt.cacheErr)

			got, ok := NewHealthService(storages, logger.Nop()).Check(context.Background())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
