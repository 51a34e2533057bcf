package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neuronspark/spark-server/internal/domain"
	domainerrors "github.com/neuronspark/spark-server/internal/errors"
	"github.com/neuronspark/spark-server/internal/id"
	"github.com/neuronspark/spark-server/internal/store"
)

// ProgramService manages generated study programs.
type ProgramService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewProgramService creates a new program service.
func NewProgramService(store *store.Store, logger *slog.Logger) *ProgramService {
	return &ProgramService{
		store:  store,
		logger: logger,
	}
}

// CreateProgram persists and returns a new program seeded with starter tasks.
func (s *ProgramService) CreateProgram(ctx context.Context, profileID string, goal domain.ExamGoal, dailyHours string, studyDays int) (*domain.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	programID, err := id.Generate("prog")
	if err != nil {
		return nil, fmt.Errorf("generate program id: %w", err)
	}

	program := domain.NewProgram(programID, profileID, goal, dailyHours, studyDays)
	if err := s.store.CreateProgram(ctx, program); err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}

	s.logger.Info("program created", "program_id", program.ID, "profile_id", profileID, "tasks", len(program.Tasks))
	return program, nil
}

// ListPrograms returns all programs owned by a profile.
func (s *ProgramService) ListPrograms(ctx context.Context, profileID string) ([]*domain.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	programs, err := s.store.ListProgramsByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}

	return programs, nil
}

// ProgramUpdate carries the partial-update fields for a program.
// Nil fields are left untouched on the stored document.
type ProgramUpdate struct {
	ExamGoal   *domain.ExamGoal
	DailyHours *string
	StudyDays  *int
	Tasks      *[]domain.ProgramTask
}

// UpdateProgram overwrites the supplied fields on a stored program and
// returns the program post-update.
func (s *ProgramService) UpdateProgram(ctx context.Context, programID string, upd ProgramUpdate) (*domain.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	program, err := s.store.GetProgram(ctx, programID)
	if err != nil {
		if domainerrors.Is(err, store.ErrProgramNotFound) {
			return nil, domainerrors.NotFound("program not found").WithCause(err)
		}
		return nil, fmt.Errorf("get program: %w", err)
	}

	if upd.ExamGoal != nil {
		program.ExamGoal = *upd.ExamGoal
	}
	if upd.DailyHours != nil {
		program.DailyHours = *upd.DailyHours
	}
	if upd.StudyDays != nil {
		program.StudyDays = *upd.StudyDays
	}
	if upd.Tasks != nil {
		program.Tasks = *upd.Tasks
	}

	if err := s.store.UpdateProgram(ctx, program); err != nil {
		if domainerrors.Is(err, store.ErrProgramNotFound) {
			return nil, domainerrors.NotFound("program not found").WithCause(err)
		}
		return nil, fmt.Errorf("update program: %w", err)
	}

	s.logger.Info("program updated", "program_id", programID)
	return program, nil
}

// DeleteProgram removes a program. Idempotent: the returned bool reports
// whether a document was actually removed.
func (s *ProgramService) DeleteProgram(ctx context.Context, programID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	deleted, err := s.store.DeleteProgram(ctx, programID)
	if err != nil {
		return false, fmt.Errorf("delete program: %w", err)
	}

	if deleted {
		s.logger.Info("program deleted", "program_id", programID)
	}
	return deleted, nil
}
