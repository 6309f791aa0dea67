package server_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"chronograph/internal/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_StartsAndRespondsToHealthCheck(t *testing.T) {
	cfg := server.Config{
		Port:            18081,
		ShutdownTimeout: 5 * time.Second,
	}
	srv := server.New(cfg, nil, nil)

	go func() {
		_ = srv.Start()
	}()

	waitForServer(t, "http://localhost:18081/health", 2*time.Second)

	resp, err := http.Get("http://localhost:18081/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(ctx)
	assert.NoError(t, err)
}

func TestServer_GracefulShutdown_WaitsForInFlightRequests(t *testing.T) {
	cfg := server.Config{
		Port:            18082,
		ShutdownTimeout: 5 * time.Second,
	}
	srv := server.New(cfg, nil, nil)

	// Add a slow endpoint for testing
	srv.HandleFunc("GET /slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("done"))
	})

	go func() {
		_ = srv.Start()
	}()

	waitForServer(t, "http://localhost:18082/health", 2*time.Second)

	// Fire a slow request, then shut down while it is in flight.
	done := make(chan error, 1)
	go func() {
		resp, err := http.Get("http://localhost:18082/slow")
		if err != nil {
			done <- err
			return
		}
		defer resp.Body.Close()
		done <- nil
	}()

	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(ctx)
	assert.NoError(t, err)

	assert.NoError(t, <-done, "in-flight request should complete")
}

func TestServer_RunStopsOnContextCancellation(t *testing.T) {
	cfg := server.Config{
		Port:            18083,
		ShutdownTimeout: 5 * time.Second,
	}
	srv := server.New(cfg, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())

	runDone := make(chan error, 1)
	go func() {
		runDone <- srv.Run(ctx)
	}()

	waitForServer(t, "http://localhost:18083/health", 2*time.Second)

	cancel()

	select {
	case err := <-runDone:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

// waitForServer polls the URL until it responds or the timeout expires.
func waitForServer(t *testing.T, url string, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server at %s did not become ready within %v", url, timeout)
}
