package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neuronspark/spark-server/internal/domain"
	"github.com/neuronspark/spark-server/internal/service"
)

func (s *Server) registerProgramRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createProgram",
		Method:      http.MethodPost,
		Path:        "/api/programs",
		Summary:     "Create program",
		Description: "Generates and stores a study program for a profile",
		Tags:        []string{"Programs"},
	}, s.handleCreateProgram)

	huma.Register(s.api, huma.Operation{
		OperationID: "listPrograms",
		Method:      http.MethodGet,
		Path:        "/api/programs/{profileId}",
		Summary:     "List programs",
		Description: "Returns all programs owned by a profile",
		Tags:        []string{"Programs"},
	}, s.handleListPrograms)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateProgram",
		Method:      http.MethodPut,
		Path:        "/api/programs/{programId}",
		Summary:     "Update program",
		Description: "Overwrites the supplied fields on a stored program",
		Tags:        []string{"Programs"},
	}, s.handleUpdateProgram)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteProgram",
		Method:      http.MethodDelete,
		Path:        "/api/programs/{programId}",
		Summary:     "Delete program",
		Description: "Deletes a program",
		Tags:        []string{"Programs"},
	}, s.handleDeleteProgram)
}

// === DTOs ===

// ProgramTaskDTO carries a single study task over the wire.
type ProgramTaskDTO struct {
	ID        string `json:"id" doc:"Task ID"`
	Lesson    string `json:"lesson" doc:"Lesson name"`
	Topic     string `json:"topic" doc:"Topic within the lesson"`
	Duration  int    `json:"duration" doc:"Planned duration in minutes"`
	Completed bool   `json:"completed" doc:"Whether the task is done"`
	Day       string `json:"day" doc:"Weekday label"`
}

// ProgramResponse contains program data in API responses.
type ProgramResponse struct {
	ID         string           `json:"id" doc:"Program ID"`
	ProfileID  string           `json:"profile_id" doc:"Owning profile ID"`
	ExamGoal   string           `json:"exam_goal" doc:"Target exam (TYT, AYT or TYT + AYT)"`
	DailyHours string           `json:"daily_hours" doc:"Requested daily study hours"`
	StudyDays  int              `json:"study_days" doc:"Days per week covered by the program"`
	Tasks      []ProgramTaskDTO `json:"tasks" doc:"Generated study tasks"`
	CreatedAt  time.Time        `json:"created_at" doc:"Creation time"`
}

// ProgramOutput wraps the program response for Huma.
type ProgramOutput struct {
	Body ProgramResponse
}

// ListProgramsResponse contains a profile's programs.
type ListProgramsResponse struct {
	Programs []ProgramResponse `json:"programs" doc:"Programs owned by the profile"`
}

// ListProgramsOutput wraps the list programs response for Huma.
type ListProgramsOutput struct {
	Body ListProgramsResponse
}

// CreateProgramRequest is the request body for creating a program.
type CreateProgramRequest struct {
	ProfileID  string `json:"profile_id" validate:"max=64" doc:"Owning profile ID"`
	ExamGoal   string `json:"exam_goal" validate:"max=30" doc:"Target exam"`
	DailyHours string `json:"daily_hours,omitempty" validate:"max=10" doc:"Requested daily study hours"`
	StudyDays  int    `json:"study_days" doc:"Days per week to plan"`
}

// CreateProgramInput wraps the create program request for Huma.
type CreateProgramInput struct {
	Body CreateProgramRequest
}

// ListProgramsInput contains parameters for listing programs.
type ListProgramsInput struct {
	ProfileID string `path:"profileId" doc:"Profile ID"`
}

// UpdateProgramRequest is the request body for updating a program.
// Nil fields are left untouched on the stored document.
type UpdateProgramRequest struct {
	ExamGoal   *string           `json:"exam_goal,omitempty" validate:"omitempty,max=30" doc:"Target exam"`
	DailyHours *string           `json:"daily_hours,omitempty" validate:"omitempty,max=10" doc:"Requested daily study hours"`
	StudyDays  *int              `json:"study_days,omitempty" doc:"Days per week covered"`
	Tasks      *[]ProgramTaskDTO `json:"tasks,omitempty" doc:"Replacement task list"`
}

// UpdateProgramInput wraps the update program request for Huma.
type UpdateProgramInput struct {
	ProgramID string `path:"programId" doc:"Program ID"`
	Body      UpdateProgramRequest
}

// DeleteProgramInput contains parameters for deleting a program.
type DeleteProgramInput struct {
	ProgramID string `path:"programId" doc:"Program ID"`
}

// DeleteProgramResponse reports whether a document was removed.
type DeleteProgramResponse struct {
	Deleted bool `json:"deleted" doc:"Whether a program was removed"`
}

// DeleteProgramOutput wraps the delete program response for Huma.
type DeleteProgramOutput struct {
	Body DeleteProgramResponse
}

func taskToDTO(t domain.ProgramTask) ProgramTaskDTO {
	return ProgramTaskDTO{
		ID:        t.ID,
		Lesson:    t.Lesson,
		Topic:     t.Topic,
		Duration:  t.Duration,
		Completed: t.Completed,
		Day:       t.Day,
	}
}

func taskFromDTO(t ProgramTaskDTO) domain.ProgramTask {
	return domain.ProgramTask{
		ID:        t.ID,
		Lesson:    t.Lesson,
		Topic:     t.Topic,
		Duration:  t.Duration,
		Completed: t.Completed,
		Day:       t.Day,
	}
}

func programToResponse(p *domain.Program) ProgramResponse {
	tasks := make([]ProgramTaskDTO, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = taskToDTO(t)
	}

	return ProgramResponse{
		ID:         p.ID,
		ProfileID:  p.ProfileID,
		ExamGoal:   string(p.ExamGoal),
		DailyHours: p.DailyHours,
		StudyDays:  p.StudyDays,
		Tasks:      tasks,
		CreatedAt:  p.CreatedAt,
	}
}

// === Handlers ===

func (s *Server) handleCreateProgram(ctx context.Context, input *CreateProgramInput) (*ProgramOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	program, err := s.services.Program.CreateProgram(ctx,
		input.Body.ProfileID,
		domain.ExamGoal(input.Body.ExamGoal),
		input.Body.DailyHours,
		input.Body.StudyDays,
	)
	if err != nil {
		return nil, err
	}

	return &ProgramOutput{Body: programToResponse(program)}, nil
}

func (s *Server) handleListPrograms(ctx context.Context, input *ListProgramsInput) (*ListProgramsOutput, error) {
	programs, err := s.services.Program.ListPrograms(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	resp := make([]ProgramResponse, len(programs))
	for i, p := range programs {
		resp[i] = programToResponse(p)
	}

	return &ListProgramsOutput{Body: ListProgramsResponse{Programs: resp}}, nil
}

func (s *Server) handleUpdateProgram(ctx context.Context, input *UpdateProgramInput) (*ProgramOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	upd := service.ProgramUpdate{
		DailyHours: input.Body.DailyHours,
		StudyDays:  input.Body.StudyDays,
	}
	if input.Body.ExamGoal != nil {
		goal := domain.ExamGoal(*input.Body.ExamGoal)
		upd.ExamGoal = &goal
	}
	if input.Body.Tasks != nil {
		tasks := make([]domain.ProgramTask, len(*input.Body.Tasks))
		for i, t := range *input.Body.Tasks {
			tasks[i] = taskFromDTO(t)
		}
		upd.Tasks = &tasks
	}

	program, err := s.services.Program.UpdateProgram(ctx, input.ProgramID, upd)
	if err != nil {
		return nil, err
	}

	return &ProgramOutput{Body: programToResponse(program)}, nil
}

func (s *Server) handleDeleteProgram(ctx context.Context, input *DeleteProgramInput) (*DeleteProgramOutput, error) {
	deleted, err := s.services.Program.DeleteProgram(ctx, input.ProgramID)
	if err != nil {
		return nil, err
	}

	return &DeleteProgramOutput{Body: DeleteProgramResponse{Deleted: deleted}}, nil
}
