package api

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronspark/spark-server/internal/config"
	"github.com/neuronspark/spark-server/internal/service"
	"github.com/neuronspark/spark-server/internal/store"
)

// testServer wraps the API server with a humatest client.
type testServer struct {
	*Server
	api     humatest.TestAPI
	cleanup func()
}

// errorBody mirrors the APIError JSON shape for assertions.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// setupTestServer creates a fully wired server over a temp-dir store.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "spark-api-test-*")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	st, err := store.New(tmpDir, logger)
	require.NoError(t, err)

	cfg := &config.Config{
		App:    config.AppConfig{Environment: "development"},
		Logger: config.LoggerConfig{Level: "error"},
		Store:  config.StoreConfig{DataPath: tmpDir},
		Server: config.ServerConfig{
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
			CORSOrigins:  []string{"*"},
			// Zero RPS disables the limiter so tests never trip it.
			RateLimitRPS: 0,
		},
	}

	services := &Services{
		Profile: service.NewProfileService(st, logger),
		Program: service.NewProgramService(st, logger),
		Room:    service.NewRoomService(st, logger),
		Message: service.NewMessageService(st, logger),
	}

	s := NewServer(cfg, st, services, logger)

	cleanup := func() {
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return &testServer{
		Server:  s,
		api:     humatest.Wrap(t, s.api),
		cleanup: cleanup,
	}
}

// decode unmarshals a humatest response body.
func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/health")
	assert.Equal(t, http.StatusOK, resp.Code)

	body := decode[HealthResponse](t, resp.Body.Bytes())
	assert.Equal(t, "healthy", body.Status)
}

func TestAPIBanner(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api")
	assert.Equal(t, http.StatusOK, resp.Code)

	body := decode[MessageResponse](t, resp.Body.Bytes())
	assert.Equal(t, "Neuron Spark API", body.Message)
}
