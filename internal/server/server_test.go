package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/handler"
	myHTTP "github.com/MKhiriev/go-media-hub/internal/handler/http"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/service"
)

func newHandlers(cfg config.Server) *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, cfg, logger.Nop())}
}

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(newHandlers(config.Server{}), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	srv, err := NewServer(newHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	srv, err := NewServer(newHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	srv, err := NewServer(newHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	select {
	case err := <-runAsync(t, srv):
		assert.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("listen failure was not reported")
	}
}

func runAsync(t *testing.T, srv Server) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(t.Context()) }()
	return done
}
