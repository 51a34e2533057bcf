package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/neuronspark/spark-server/internal/domain"
	domainerrors "github.com/neuronspark/spark-server/internal/errors"
	"github.com/neuronspark/spark-server/internal/id"
	"github.com/neuronspark/spark-server/internal/store"
)

// MessageService manages the append-only per-room chat log.
type MessageService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewMessageService creates a new message service.
func NewMessageService(store *store.Store, logger *slog.Logger) *MessageService {
	return &MessageService{
		store:  store,
		logger: logger,
	}
}

// PostMessage persists and returns a new chat message.
// The content must be non-empty after trimming whitespace.
func (s *MessageService) PostMessage(ctx context.Context, roomID, userID, userName string, field domain.StudyField, content string) (*domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, domainerrors.Validation("Mesaj boş olamaz")
	}

	msgID, err := id.Generate("msg")
	if err != nil {
		return nil, fmt.Errorf("generate message id: %w", err)
	}

	msg := domain.NewMessage(msgID, roomID, userID, userName, field, content)
	if err := s.store.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.logger.Debug("message posted", "room_id", roomID, "message_id", msg.ID)
	return msg, nil
}

// GetMessages returns a room's messages ordered by timestamp ascending.
// The result is bounded by the store's query cap; there is no pagination.
func (s *MessageService) GetMessages(ctx context.Context, roomID string) ([]*domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	messages, err := s.store.ListMessagesByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}
