package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/page-index-service/internal/config"
	"github.com/maxviazov/page-index-service/internal/handler"
)

func testConfig(port int) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "page-index-service", Env: "test"},
		HTTP: config.HTTPConfig{
			Host:            "127.0.0.1",
			Port:            port,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		},
		Pagination: config.PaginationConfig{Strict: true, DefaultItemsPerPage: 10},
	}
}

func TestRun_PortInUseNeverReady(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	gate := &handler.Readiness{}
	port := busy.Addr().(*net.TCPAddr).Port

	err = run(context.Background(), testConfig(port), zerolog.New(io.Discard), gate)
	require.Error(t, err)
	assert.True(t, errors.Is(gate.Ping(context.Background()), handler.ErrNotReady))
}

func TestRun_ServesUntilCanceled(t *testing.T) {
	// grab a free port, release it, then let run bind it
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	gate := &handler.Readiness{}
	done := make(chan error, 1)
	go func() { done <- run(ctx, testConfig(port), zerolog.New(io.Discard), gate) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/api/v1/pages/indices?page=3&per_page=5", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.NoError(t, gate.Ping(context.Background()))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
	assert.True(t, errors.Is(gate.Ping(context.Background()), handler.ErrNotReady))
}
