package service

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuronspark/spark-server/internal/store"
)

// newTestDeps opens a temp-dir store and a quiet logger for service tests.
func newTestDeps(t *testing.T) (*store.Store, *slog.Logger) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = st.Close()
	})

	return st, logger
}
