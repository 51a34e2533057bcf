package domain

import "time"

// DefaultTimerMinutes is the pomodoro length a new room starts with.
const DefaultTimerMinutes = 25

// RoomParticipant is a member of a study room. The list only grows; there is
// no leave or kick operation.
type RoomParticipant struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	StudyField StudyField `json:"study_field,omitempty"`
}

// TimerState is the shared pomodoro timer embedded in a room.
//
// The server only stores whatever state clients hand it: it never ticks
// RemainingSeconds down or expires a running timer. Polling clients render the
// countdown locally and write terminal states back. Updates replace the whole
// struct, never merge fields.
type TimerState struct {
	IsRunning        bool   `json:"is_running"`
	DurationMinutes  int    `json:"duration_minutes"`
	RemainingSeconds int    `json:"remaining_seconds"`
	StartedAt        string `json:"started_at,omitempty"`
}

// NewTimerState returns the stopped 25-minute default for a fresh room.
func NewTimerState() TimerState {
	return TimerState{
		IsRunning:        false,
		DurationMinutes:  DefaultTimerMinutes,
		RemainingSeconds: 0,
	}
}

// Room is a collaborative study room joined by a short shareable code.
type Room struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Code         string            `json:"code"` // 6-char uppercase join code
	OwnerID      string            `json:"owner_id"`
	Participants []RoomParticipant `json:"participants"`
	TimerState   TimerState        `json:"timer_state"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewRoom creates a room with the owner as its sole participant.
// The owner always sits at participant index 0.
func NewRoom(roomID, code, name string, owner RoomParticipant) *Room {
	return &Room{
		ID:           roomID,
		Name:         name,
		Code:         code,
		OwnerID:      owner.ID,
		Participants: []RoomParticipant{owner},
		TimerState:   NewTimerState(),
		CreatedAt:    time.Now().UTC(),
	}
}
