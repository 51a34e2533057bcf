package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neuronspark/spark-server/internal/domain"
)

func (s *Server) registerRoomRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createRoom",
		Method:      http.MethodPost,
		Path:        "/api/rooms",
		Summary:     "Create room",
		Description: "Creates a study room with the owner as first participant",
		Tags:        []string{"Rooms"},
	}, s.handleCreateRoom)

	huma.Register(s.api, huma.Operation{
		OperationID: "joinRoom",
		Method:      http.MethodPost,
		Path:        "/api/rooms/join",
		Summary:     "Join room",
		Description: "Adds a participant to the room matching the join code",
		Tags:        []string{"Rooms"},
	}, s.handleJoinRoom)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRoom",
		Method:      http.MethodGet,
		Path:        "/api/rooms/{id}",
		Summary:     "Get room",
		Description: "Returns a room by ID",
		Tags:        []string{"Rooms"},
	}, s.handleGetRoom)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRoomByCode",
		Method:      http.MethodGet,
		Path:        "/api/rooms/code/{code}",
		Summary:     "Get room by code",
		Description: "Returns a room by its join code",
		Tags:        []string{"Rooms"},
	}, s.handleGetRoomByCode)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateTimer",
		Method:      http.MethodPut,
		Path:        "/api/rooms/{id}/timer",
		Summary:     "Update timer",
		Description: "Replaces the room's shared timer state",
		Tags:        []string{"Rooms"},
	}, s.handleUpdateTimer)
}

// === DTOs ===

// RoomParticipantDTO carries a room participant over the wire.
type RoomParticipantDTO struct {
	ID         string `json:"id" doc:"Participant ID"`
	Name       string `json:"name" doc:"Display name"`
	StudyField string `json:"study_field" doc:"Study track"`
}

// TimerStateDTO carries the shared timer state over the wire.
type TimerStateDTO struct {
	IsRunning        bool   `json:"is_running" doc:"Whether the timer is counting down"`
	DurationMinutes  int    `json:"duration_minutes" doc:"Configured session length"`
	RemainingSeconds int    `json:"remaining_seconds" doc:"Seconds left on the timer"`
	StartedAt        string `json:"started_at,omitempty" doc:"RFC 3339 start time, empty when stopped"`
}

// RoomResponse contains room data in API responses.
type RoomResponse struct {
	ID           string               `json:"id" doc:"Room ID"`
	Name         string               `json:"name" doc:"Room name"`
	Code         string               `json:"code" doc:"Six character join code"`
	OwnerID      string               `json:"owner_id" doc:"Owner participant ID"`
	Participants []RoomParticipantDTO `json:"participants" doc:"Participants in join order"`
	TimerState   TimerStateDTO        `json:"timer_state" doc:"Shared timer state"`
	CreatedAt    time.Time            `json:"created_at" doc:"Creation time"`
}

// RoomOutput wraps the room response for Huma.
type RoomOutput struct {
	Body RoomResponse
}

// CreateRoomRequest is the request body for creating a room.
type CreateRoomRequest struct {
	Name            string `json:"name" validate:"max=100" doc:"Room name"`
	OwnerName       string `json:"owner_name" validate:"max=100" doc:"Owner display name"`
	OwnerStudyField string `json:"owner_study_field,omitempty" validate:"max=30" doc:"Owner study track"`
}

// CreateRoomInput wraps the create room request for Huma.
type CreateRoomInput struct {
	Body CreateRoomRequest
}

// JoinRoomRequest is the request body for joining a room.
type JoinRoomRequest struct {
	RoomCode       string `json:"room_code" validate:"max=10" doc:"Join code, case insensitive"`
	UserName       string `json:"user_name" validate:"max=100" doc:"Participant display name"`
	UserStudyField string `json:"user_study_field,omitempty" validate:"max=30" doc:"Participant study track"`
}

// JoinRoomInput wraps the join room request for Huma.
type JoinRoomInput struct {
	Body JoinRoomRequest
}

// GetRoomInput contains parameters for getting a room by ID.
type GetRoomInput struct {
	ID string `path:"id" doc:"Room ID"`
}

// GetRoomByCodeInput contains parameters for getting a room by join code.
type GetRoomByCodeInput struct {
	Code string `path:"code" doc:"Join code"`
}

// UpdateTimerInput wraps the timer update request for Huma.
type UpdateTimerInput struct {
	ID   string `path:"id" doc:"Room ID"`
	Body TimerStateDTO
}

// UpdateTimerResponse acknowledges a timer write.
type UpdateTimerResponse struct {
	Success bool `json:"success" doc:"Whether the timer state was stored"`
}

// UpdateTimerOutput wraps the timer update response for Huma.
type UpdateTimerOutput struct {
	Body UpdateTimerResponse
}

func roomToResponse(r *domain.Room) RoomResponse {
	participants := make([]RoomParticipantDTO, len(r.Participants))
	for i, p := range r.Participants {
		participants[i] = RoomParticipantDTO{
			ID:         p.ID,
			Name:       p.Name,
			StudyField: string(p.StudyField),
		}
	}

	return RoomResponse{
		ID:           r.ID,
		Name:         r.Name,
		Code:         r.Code,
		OwnerID:      r.OwnerID,
		Participants: participants,
		TimerState: TimerStateDTO{
			IsRunning:        r.TimerState.IsRunning,
			DurationMinutes:  r.TimerState.DurationMinutes,
			RemainingSeconds: r.TimerState.RemainingSeconds,
			StartedAt:        r.TimerState.StartedAt,
		},
		CreatedAt: r.CreatedAt,
	}
}

// === Handlers ===

func (s *Server) handleCreateRoom(ctx context.Context, input *CreateRoomInput) (*RoomOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	room, err := s.services.Room.CreateRoom(ctx,
		input.Body.Name,
		input.Body.OwnerName,
		domain.StudyField(input.Body.OwnerStudyField),
	)
	if err != nil {
		return nil, err
	}

	return &RoomOutput{Body: roomToResponse(room)}, nil
}

func (s *Server) handleJoinRoom(ctx context.Context, input *JoinRoomInput) (*RoomOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	room, err := s.services.Room.JoinRoom(ctx,
		input.Body.RoomCode,
		input.Body.UserName,
		domain.StudyField(input.Body.UserStudyField),
	)
	if err != nil {
		return nil, err
	}

	return &RoomOutput{Body: roomToResponse(room)}, nil
}

func (s *Server) handleGetRoom(ctx context.Context, input *GetRoomInput) (*RoomOutput, error) {
	room, err := s.services.Room.GetRoom(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &RoomOutput{Body: roomToResponse(room)}, nil
}

func (s *Server) handleGetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*RoomOutput, error) {
	room, err := s.services.Room.GetRoomByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	return &RoomOutput{Body: roomToResponse(room)}, nil
}

func (s *Server) handleUpdateTimer(ctx context.Context, input *UpdateTimerInput) (*UpdateTimerOutput, error) {
	state := domain.TimerState{
		IsRunning:        input.Body.IsRunning,
		DurationMinutes:  input.Body.DurationMinutes,
		RemainingSeconds: input.Body.RemainingSeconds,
		StartedAt:        input.Body.StartedAt,
	}

	if err := s.services.Room.UpdateTimer(ctx, input.ID, state); err != nil {
		return nil, err
	}

	return &UpdateTimerOutput{Body: UpdateTimerResponse{Success: true}}, nil
}
