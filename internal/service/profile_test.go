package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronspark/spark-server/internal/domain"
	domainerrors "github.com/neuronspark/spark-server/internal/errors"
)

func TestCreateProfile_RoundTrip(t *testing.T) {
	st, logger := newTestDeps(t)
	svc := NewProfileService(st, logger)
	ctx := context.Background()

	created, err := svc.CreateProfile(ctx, "Ayşe", domain.StudyFieldSayisal)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ayşe", created.Name)

	got, err := svc.GetProfile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, domain.StudyFieldSayisal, got.StudyField)
}

func TestCreateProfile_BlankNameRejected(t *testing.T) {
	st, logger := newTestDeps(t)
	svc := NewProfileService(st, logger)
	ctx := context.Background()

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateProfile(ctx, name, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidation)

		var domainErr *domainerrors.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "İsim boş olamaz", domainErr.Message)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	st, logger := newTestDeps(t)
	svc := NewProfileService(st, logger)

	_, err := svc.GetProfile(context.Background(), "prof-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
