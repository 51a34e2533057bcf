package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarterTasks_TwoTasksPerDayInWeekdayOrder(t *testing.T) {
	tasks := StarterTasks(ExamGoalTYT, "2-4", 3)

	require.Len(t, tasks, 6)

	wantDays := []string{"Pazartesi", "Pazartesi", "Salı", "Salı", "Çarşamba", "Çarşamba"}
	for i, task := range tasks {
		assert.Equal(t, wantDays[i], task.Day)
		assert.False(t, task.Completed)
		assert.Positive(t, task.Duration)
		assert.NotEmpty(t, task.ID)
		assert.NotEmpty(t, task.Lesson)
		assert.NotEmpty(t, task.Topic)
	}

	// Each day gets the same two templates in the same order.
	assert.Equal(t, "Matematik", tasks[0].Lesson)
	assert.Equal(t, "Temel Kavramlar", tasks[0].Topic)
	assert.Equal(t, 45, tasks[0].Duration)
	assert.Equal(t, "Türkçe", tasks[1].Lesson)
	assert.Equal(t, tasks[0].Lesson, tasks[2].Lesson)
	assert.Equal(t, tasks[1].Lesson, tasks[3].Lesson)
}

func TestStarterTasks_TaskIDsAreUnique(t *testing.T) {
	tasks := StarterTasks(ExamGoalAYT, "4+", 7)
	require.Len(t, tasks, 14)

	seen := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate task id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestStarterTasks_UnknownGoalFallsBackToTYT(t *testing.T) {
	fallback := StarterTasks(ExamGoal("LGS"), "1-2", 2)
	tyt := StarterTasks(ExamGoalTYT, "1-2", 2)

	require.Len(t, fallback, len(tyt))
	for i := range fallback {
		assert.Equal(t, tyt[i].Lesson, fallback[i].Lesson)
		assert.Equal(t, tyt[i].Topic, fallback[i].Topic)
		assert.Equal(t, tyt[i].Duration, fallback[i].Duration)
		assert.Equal(t, tyt[i].Day, fallback[i].Day)
	}
}

func TestStarterTasks_ClampsStudyDays(t *testing.T) {
	assert.Len(t, StarterTasks(ExamGoalTYT, "2-4", 10), 14)
	assert.Empty(t, StarterTasks(ExamGoalTYT, "2-4", 0))
	assert.Empty(t, StarterTasks(ExamGoalTYT, "2-4", -3))
}

func TestStarterTasks_DailyHoursDoesNotChangeOutput(t *testing.T) {
	for _, hours := range []string{"", "1-2", "2-4", "4+", "nonsense"} {
		tasks := StarterTasks(ExamGoalTYTAYT, hours, 4)
		assert.Len(t, tasks, 8, "daily_hours=%q", hours)
		assert.Equal(t, "TYT Matematik", tasks[0].Lesson)
	}
}

func TestNewProgram_CarriesGeneratedTasks(t *testing.T) {
	p := NewProgram("prog-1", "prof-1", ExamGoalAYT, "2-4", 5)

	assert.Equal(t, "prog-1", p.ID)
	assert.Equal(t, "prof-1", p.ProfileID)
	assert.Equal(t, ExamGoalAYT, p.ExamGoal)
	assert.Equal(t, 5, p.StudyDays)
	assert.Len(t, p.Tasks, 10)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestStudyFieldValid(t *testing.T) {
	assert.True(t, StudyField("").Valid())
	assert.True(t, StudyFieldSayisal.Valid())
	assert.True(t, StudyFieldEA.Valid())
	assert.True(t, StudyFieldSozel.Valid())
	assert.False(t, StudyField("Dil").Valid())
}

func TestNewRoom_OwnerIsFirstParticipant(t *testing.T) {
	owner := RoomParticipant{ID: "u-1", Name: "Ayşe", StudyField: StudyFieldEA}
	room := NewRoom("room-1", "ABC234", "Sabah Kampı", owner)

	assert.Equal(t, "u-1", room.OwnerID)
	require.Len(t, room.Participants, 1)
	assert.Equal(t, owner, room.Participants[0])

	// Fresh rooms start with the stopped 25 minute default.
	assert.False(t, room.TimerState.IsRunning)
	assert.Equal(t, DefaultTimerMinutes, room.TimerState.DurationMinutes)
	assert.Zero(t, room.TimerState.RemainingSeconds)
	assert.Empty(t, room.TimerState.StartedAt)
}
