package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neuronspark/spark-server/internal/domain"
)

func (s *Server) registerMessageRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createMessage",
		Method:      http.MethodPost,
		Path:        "/api/messages",
		Summary:     "Post message",
		Description: "Appends a chat message to a room's log",
		Tags:        []string{"Messages"},
	}, s.handleCreateMessage)

	huma.Register(s.api, huma.Operation{
		OperationID: "listMessages",
		Method:      http.MethodGet,
		Path:        "/api/messages/{roomId}",
		Summary:     "List messages",
		Description: "Returns a room's messages in chronological order",
		Tags:        []string{"Messages"},
	}, s.handleListMessages)
}

// === DTOs ===

// ChatMessageResponse contains chat message data in API responses.
type ChatMessageResponse struct {
	ID             string    `json:"id" doc:"Message ID"`
	RoomID         string    `json:"room_id" doc:"Room the message belongs to"`
	UserID         string    `json:"user_id" doc:"Author participant ID"`
	UserName       string    `json:"user_name" doc:"Author display name"`
	UserStudyField string    `json:"user_study_field" doc:"Author study track"`
	Content        string    `json:"content" doc:"Message text"`
	Timestamp      time.Time `json:"timestamp" doc:"Send time"`
}

// ChatMessageOutput wraps a single chat message for Huma.
type ChatMessageOutput struct {
	Body ChatMessageResponse
}

// ListMessagesResponse contains a room's chat log.
type ListMessagesResponse struct {
	Messages []ChatMessageResponse `json:"messages" doc:"Messages ordered by timestamp ascending"`
}

// ListMessagesOutput wraps the chat log response for Huma.
type ListMessagesOutput struct {
	Body ListMessagesResponse
}

// CreateMessageRequest is the request body for posting a chat message.
type CreateMessageRequest struct {
	RoomID         string `json:"room_id" validate:"max=64" doc:"Room ID"`
	UserID         string `json:"user_id" validate:"max=64" doc:"Author participant ID"`
	UserName       string `json:"user_name" validate:"max=100" doc:"Author display name"`
	UserStudyField string `json:"user_study_field,omitempty" validate:"max=30" doc:"Author study track"`
	Content        string `json:"content" validate:"max=1000" doc:"Message text"`
}

// CreateMessageInput wraps the create message request for Huma.
type CreateMessageInput struct {
	Body CreateMessageRequest
}

// ListMessagesInput contains parameters for listing a room's messages.
type ListMessagesInput struct {
	RoomID string `path:"roomId" doc:"Room ID"`
}

func messageToResponse(m *domain.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:             m.ID,
		RoomID:         m.RoomID,
		UserID:         m.UserID,
		UserName:       m.UserName,
		UserStudyField: string(m.UserStudyField),
		Content:        m.Content,
		Timestamp:      m.Timestamp,
	}
}

// === Handlers ===

func (s *Server) handleCreateMessage(ctx context.Context, input *CreateMessageInput) (*ChatMessageOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	msg, err := s.services.Message.PostMessage(ctx,
		input.Body.RoomID,
		input.Body.UserID,
		input.Body.UserName,
		domain.StudyField(input.Body.UserStudyField),
		input.Body.Content,
	)
	if err != nil {
		return nil, err
	}

	return &ChatMessageOutput{Body: messageToResponse(msg)}, nil
}

func (s *Server) handleListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error) {
	messages, err := s.services.Message.GetMessages(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	resp := make([]ChatMessageResponse, len(messages))
	for i, m := range messages {
		resp[i] = messageToResponse(m)
	}

	return &ListMessagesOutput{Body: ListMessagesResponse{Messages: resp}}, nil
}
