package domain

import "time"

// Message is a single chat entry in a room. Immutable and append-only;
// a room's history is ordered by timestamp ascending.
type Message struct {
	ID             string     `json:"id"`
	RoomID         string     `json:"room_id"`
	UserID         string     `json:"user_id"`
	UserName       string     `json:"user_name"`
	UserStudyField StudyField `json:"user_study_field,omitempty"`
	Content        string     `json:"content"`
	Timestamp      time.Time  `json:"timestamp"`
}

// NewMessage creates a message stamped with the current time.
func NewMessage(msgID, roomID, userID, userName string, field StudyField, content string) *Message {
	return &Message{
		ID:             msgID,
		RoomID:         roomID,
		UserID:         userID,
		UserName:       userName,
		UserStudyField: field,
		Content:        content,
		Timestamp:      time.Now().UTC(),
	}
}
