package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/neuronspark/spark-server/internal/domain"
	domainerrors "github.com/neuronspark/spark-server/internal/errors"
	"github.com/neuronspark/spark-server/internal/id"
	"github.com/neuronspark/spark-server/internal/store"
)

// maxCodeAttempts bounds join-code regeneration when an insert collides with
// an existing code.
const maxCodeAttempts = 5

// RoomService manages collaborative study rooms: creation, admission by join
// code, and the shared timer state.
type RoomService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewRoomService creates a new room service.
func NewRoomService(store *store.Store, logger *slog.Logger) *RoomService {
	return &RoomService{
		store:  store,
		logger: logger,
	}
}

// CreateRoom persists a new room with the owner as its sole participant and
// returns it. Callers must capture the generated owner id from the returned
// room to act as that participant later.
func (s *RoomService) CreateRoom(ctx context.Context, name, ownerName string, ownerField domain.StudyField) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.Validation("Oda adı boş olamaz")
	}
	if strings.TrimSpace(ownerName) == "" {
		return nil, domainerrors.Validation("İsim boş olamaz")
	}

	roomID, err := id.Generate("room")
	if err != nil {
		return nil, fmt.Errorf("generate room id: %w", err)
	}

	owner := domain.RoomParticipant{
		ID:         uuid.NewString(),
		Name:       ownerName,
		StudyField: ownerField,
	}

	// The code index enforces uniqueness at insert time; on collision we
	// generate a fresh code and try again.
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := id.NewRoomCode()
		if err != nil {
			return nil, err
		}

		room := domain.NewRoom(roomID, code, name, owner)
		err = s.store.CreateRoom(ctx, room)
		if err == nil {
			s.logger.Info("room created", "room_id", room.ID, "code", room.Code)
			return room, nil
		}
		if !domainerrors.Is(err, store.ErrRoomCodeTaken) {
			return nil, fmt.Errorf("create room: %w", err)
		}

		s.logger.Warn("room code collision, regenerating", "code", code)
	}

	return nil, domainerrors.Conflict("could not allocate a unique room code")
}

// JoinRoom admits a new participant into the room matching the join code and
// returns the room as stored after the append.
func (s *RoomService) JoinRoom(ctx context.Context, code, userName string, userField domain.StudyField) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(userName) == "" {
		return nil, domainerrors.Validation("İsim boş olamaz")
	}
	if strings.TrimSpace(code) == "" {
		return nil, domainerrors.Validation("Oda kodu boş olamaz")
	}

	room, err := s.store.GetRoomByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if domainerrors.Is(err, store.ErrRoomNotFound) {
			return nil, domainerrors.NotFound("Oda bulunamadı").WithCause(err)
		}
		return nil, fmt.Errorf("lookup room by code: %w", err)
	}

	participant := domain.RoomParticipant{
		ID:         uuid.NewString(),
		Name:       userName,
		StudyField: userField,
	}

	updated, err := s.store.AppendParticipant(ctx, room.ID, participant)
	if err != nil {
		if domainerrors.Is(err, store.ErrRoomNotFound) {
			return nil, domainerrors.NotFound("Oda bulunamadı").WithCause(err)
		}
		return nil, fmt.Errorf("append participant: %w", err)
	}

	s.logger.Info("participant joined", "room_id", room.ID, "participant_id", participant.ID)
	return updated, nil
}

// GetRoom returns a room by ID, or a not-found error when absent.
func (s *RoomService) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	room, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		if domainerrors.Is(err, store.ErrRoomNotFound) {
			return nil, domainerrors.NotFound("Oda bulunamadı").WithCause(err)
		}
		return nil, fmt.Errorf("get room: %w", err)
	}

	return room, nil
}

// GetRoomByCode returns a room by join code, uppercasing the code first.
func (s *RoomService) GetRoomByCode(ctx context.Context, code string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	room, err := s.store.GetRoomByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if domainerrors.Is(err, store.ErrRoomNotFound) {
			return nil, domainerrors.NotFound("Oda bulunamadı").WithCause(err)
		}
		return nil, fmt.Errorf("get room by code: %w", err)
	}

	return room, nil
}

// UpdateTimer replaces a room's timer state wholesale. Any caller holding the
// room id may control the timer; the state itself is not validated and the
// last write wins.
func (s *RoomService) UpdateTimer(ctx context.Context, roomID string, state domain.TimerState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.store.SetTimerState(ctx, roomID, state); err != nil {
		if domainerrors.Is(err, store.ErrRoomNotFound) {
			return domainerrors.NotFound("Oda bulunamadı").WithCause(err)
		}
		return fmt.Errorf("set timer state: %w", err)
	}

	s.logger.Debug("timer updated", "room_id", roomID, "running", state.IsRunning)
	return nil
}
