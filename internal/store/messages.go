package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/neuronspark/spark-server/internal/domain"
)

// Key prefixes for message storage.
//
// The room index embeds a fixed-width timestamp so that iterating the index
// prefix in key order yields messages in chronological order.
const (
	messagePrefix       = "message:"           // message:{id} → Message JSON
	messageByRoomPrefix = "idx:messages:room:" // idx:messages:room:{roomID}:{sortable-ts}:{msgID} → msgID
)

// ErrMessageNotFound is returned when a message lookup yields no document.
var ErrMessageNotFound = errors.New("message not found")

// CreateMessage persists a new message and its room/time index entry.
func (s *Store) CreateMessage(ctx context.Context, m *domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	key := []byte(messagePrefix + m.ID)
	indexKey := []byte(messageByRoomPrefix + m.RoomID + ":" + sortableTimestamp(m.Timestamp) + ":" + m.ID)

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return errors.New("message already exists")
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check message exists: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(indexKey, []byte(m.ID))
	})
}

// ListMessagesByRoom returns a room's messages ordered by timestamp ascending,
// capped at maxQueryLimit documents.
func (s *Store) ListMessagesByRoom(ctx context.Context, roomID string) ([]*domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ids []string
	prefix := []byte(messageByRoomPrefix + roomID + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if len(ids) >= maxQueryLimit {
				break
			}
			err := it.Item().Value(func(val []byte) error {
				ids = append(ids, string(val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan message index: %w", err)
	}

	messages := make([]*domain.Message, 0, len(ids))
	for _, id := range ids {
		var m domain.Message
		if err := s.get([]byte(messagePrefix+id), &m); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue // index entry outlived the document
			}
			return nil, fmt.Errorf("get message: %w", err)
		}
		messages = append(messages, &m)
	}

	return messages, nil
}
