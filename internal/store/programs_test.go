package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronspark/spark-server/internal/domain"
)

func TestProgramRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	program := domain.NewProgram("prog-1", "prof-1", domain.ExamGoalTYT, "2-4", 3)
	require.NoError(t, st.CreateProgram(ctx, program))

	got, err := st.GetProgram(ctx, "prog-1")
	require.NoError(t, err)

	assert.Equal(t, program.ID, got.ID)
	assert.Equal(t, program.ProfileID, got.ProfileID)
	assert.Equal(t, program.ExamGoal, got.ExamGoal)
	assert.Len(t, got.Tasks, len(program.Tasks))
}

func TestListProgramsByProfile_FiltersOwnership(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.CreateProgram(ctx, domain.NewProgram("prog-a1", "prof-a", domain.ExamGoalTYT, "1-2", 2)))
	require.NoError(t, st.CreateProgram(ctx, domain.NewProgram("prog-a2", "prof-a", domain.ExamGoalAYT, "2-4", 4)))
	require.NoError(t, st.CreateProgram(ctx, domain.NewProgram("prog-b1", "prof-b", domain.ExamGoalTYT, "4+", 5)))

	programs, err := st.ListProgramsByProfile(ctx, "prof-a")
	require.NoError(t, err)
	require.Len(t, programs, 2)
	for _, p := range programs {
		assert.Equal(t, "prof-a", p.ProfileID)
	}

	programs, err = st.ListProgramsByProfile(ctx, "prof-c")
	require.NoError(t, err)
	assert.Empty(t, programs)
}

func TestUpdateProgram_OverwritesDocument(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	program := domain.NewProgram("prog-1", "prof-1", domain.ExamGoalTYT, "2-4", 3)
	require.NoError(t, st.CreateProgram(ctx, program))

	program.StudyDays = 6
	program.Tasks[0].Completed = true
	require.NoError(t, st.UpdateProgram(ctx, program))

	got, err := st.GetProgram(ctx, "prog-1")
	require.NoError(t, err)
	assert.Equal(t, 6, got.StudyDays)
	assert.True(t, got.Tasks[0].Completed)
}

func TestUpdateProgram_NotFound(t *testing.T) {
	st := newTestStore(t)

	program := domain.NewProgram("prog-missing", "prof-1", domain.ExamGoalTYT, "2-4", 3)
	assert.ErrorIs(t, st.UpdateProgram(context.Background(), program), ErrProgramNotFound)
}

func TestDeleteProgram_Idempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	program := domain.NewProgram("prog-1", "prof-1", domain.ExamGoalTYT, "2-4", 3)
	require.NoError(t, st.CreateProgram(ctx, program))

	deleted, err := st.DeleteProgram(ctx, "prog-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete is a no-op, not an error.
	deleted, err = st.DeleteProgram(ctx, "prog-1")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = st.GetProgram(ctx, "prog-1")
	assert.ErrorIs(t, err, ErrProgramNotFound)

	// The index entry is gone too.
	programs, err := st.ListProgramsByProfile(ctx, "prof-1")
	require.NoError(t, err)
	assert.Empty(t, programs)
}
