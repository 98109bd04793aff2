package server

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/handler"
	httpHandler "github.com/MKhiriev/go-env-keeper/internal/handler/http"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, s)
}

func TestNewServer_NoHandler(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, s)
}

func TestNewServer_HTTP(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: httpHandler.NewHandler(&service.Services{}, config.App{}, logger.Nop()),
	}

	s, err := NewServer(handlers, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestNewHTTPServer_DefaultTimeout(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Equal(t, config.DefaultRequestTimeout, s.server.ReadHeaderTimeout)
}

func TestHTTPServer_RunAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	s := newHTTPServer(ok, config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())

	done := make(chan struct{})
	go func() {
		s.RunServer()
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 2*time.Second, 20*time.Millisecond)

	s.Shutdown()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
