package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/handler"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", BasePath: "/api"}

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, srv)
}

func TestNewServer_NoServers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  error
	}{
		{name: "no address", handlers: &handler.Handlers{}, cfg: config.Server{}, wantErr: ErrNoHTTPAddress},
		{name: "nil handlers", handlers: nil, cfg: config.Server{HTTPAddress: ":3000"}, wantErr: ErrNoHTTPHandler},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":3000"}, wantErr: ErrNoHTTPHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, srv)
		})
	}
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	// occupy a port so the server cannot bind it
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: busy.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	err = s.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}

func TestServer_Run_ServesRequests(t *testing.T) {
	// reserve a free port, then release it for the server
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	handlerFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	s := &server{
		httpServer: newHTTPServer(handlerFn, config.Server{HTTPAddress: addr}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestServer_Run_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.Run(context.Background()), ErrNoHTTPHandler)
}
