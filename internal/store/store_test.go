package store

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronspark/spark-server/internal/domain"
)

// newTestStore opens a Badger store in a per-test temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	st, err := New(t.TempDir(), logger)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = st.Close()
	})

	return st
}

func TestProfileRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	profile := domain.NewProfile("prof-1", "Ayşe", domain.StudyFieldSayisal)
	require.NoError(t, st.CreateProfile(ctx, profile))

	got, err := st.GetProfile(ctx, "prof-1")
	require.NoError(t, err)

	assert.Equal(t, profile.ID, got.ID)
	assert.Equal(t, profile.Name, got.Name)
	assert.Equal(t, profile.StudyField, got.StudyField)
	assert.WithinDuration(t, profile.CreatedAt, got.CreatedAt, 0)
}

func TestGetProfile_NotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetProfile(context.Background(), "prof-missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCreateProfile_DuplicateIDRejected(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	profile := domain.NewProfile("prof-1", "Ayşe", "")
	require.NoError(t, st.CreateProfile(ctx, profile))
	assert.Error(t, st.CreateProfile(ctx, profile))
}
