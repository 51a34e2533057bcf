package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProgram(t *testing.T, ts *testServer, profileID string) ProgramResponse {
	t.Helper()

	resp := ts.api.Post("/api/programs", map[string]any{
		"profile_id":  profileID,
		"exam_goal":   "TYT",
		"daily_hours": "2-4",
		"study_days":  3,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	return decode[ProgramResponse](t, resp.Body.Bytes())
}

func TestCreateProgram_GeneratesTasks(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	program := createTestProgram(t, ts, "prof-1")

	assert.NotEmpty(t, program.ID)
	assert.Equal(t, "prof-1", program.ProfileID)
	assert.Equal(t, "TYT", program.ExamGoal)
	require.Len(t, program.Tasks, 6)
	assert.Equal(t, "Pazartesi", program.Tasks[0].Day)
	assert.False(t, program.Tasks[0].Completed)
}

func TestListPrograms_ByProfile(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	createTestProgram(t, ts, "prof-1")
	createTestProgram(t, ts, "prof-1")
	createTestProgram(t, ts, "prof-2")

	resp := ts.api.Get("/api/programs/prof-1")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[ListProgramsResponse](t, resp.Body.Bytes())
	require.Len(t, body.Programs, 2)
	for _, p := range body.Programs {
		assert.Equal(t, "prof-1", p.ProfileID)
	}
}

func TestUpdateProgram_Partial(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	program := createTestProgram(t, ts, "prof-1")

	resp := ts.api.Put("/api/programs/"+program.ID, map[string]any{
		"study_days": 6,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	updated := decode[ProgramResponse](t, resp.Body.Bytes())
	assert.Equal(t, 6, updated.StudyDays)

	// Untouched fields survive the partial update.
	assert.Equal(t, program.ExamGoal, updated.ExamGoal)
	assert.Equal(t, program.DailyHours, updated.DailyHours)
	assert.Len(t, updated.Tasks, len(program.Tasks))
}

func TestUpdateProgram_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Put("/api/programs/prog-missing", map[string]any{
		"study_days": 6,
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteProgram_ReportsDeletion(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	program := createTestProgram(t, ts, "prof-1")

	resp := ts.api.Delete("/api/programs/" + program.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, decode[DeleteProgramResponse](t, resp.Body.Bytes()).Deleted)

	// Deleting again reports false instead of erroring.
	resp = ts.api.Delete("/api/programs/" + program.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, decode[DeleteProgramResponse](t, resp.Body.Bytes()).Deleted)
}
