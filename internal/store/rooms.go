package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/neuronspark/spark-server/internal/domain"
)

// Key prefixes for room storage.
const (
	roomPrefix       = "room:"          // room:{id} → Room JSON
	roomByCodePrefix = "idx:rooms:code:" // idx:rooms:code:{CODE} → roomID
)

// Room errors.
var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomCodeTaken = errors.New("room code already in use")
)

// CreateRoom persists a new room and claims its join code.
// Returns ErrRoomCodeTaken if another room already owns the code; callers
// regenerate the code and retry.
func (s *Store) CreateRoom(ctx context.Context, r *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal room: %w", err)
	}

	key := []byte(roomPrefix + r.ID)
	codeKey := []byte(roomByCodePrefix + r.Code)

	return s.db.Update(func(txn *badger.Txn) error {
		// The code index is the uniqueness guard.
		if _, err := txn.Get(codeKey); err == nil {
			return ErrRoomCodeTaken
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check room code: %w", err)
		}

		if _, err := txn.Get(key); err == nil {
			return errors.New("room already exists")
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check room exists: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(codeKey, []byte(r.ID))
	})
}

// GetRoom retrieves a room by ID.
// Returns ErrRoomNotFound if no document matches.
func (s *Store) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var r domain.Room
	if err := s.get([]byte(roomPrefix+id), &r); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}

	return &r, nil
}

// GetRoomByCode retrieves a room by its join code. The caller is responsible
// for uppercasing the code before lookup.
func (s *Store) GetRoomByCode(ctx context.Context, code string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var roomID string
	codeKey := []byte(roomByCodePrefix + code)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(codeKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRoomNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			roomID = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return s.GetRoom(ctx, roomID)
}

// AppendParticipant atomically appends a participant to a room's list and
// returns the room as stored after the append. The read-modify-write runs in
// a single transaction with conflict retry, so two concurrent joins against
// the same room both land.
func (s *Store) AppendParticipant(ctx context.Context, roomID string, p domain.RoomParticipant) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := []byte(roomPrefix + roomID)
	var updated domain.Room

	err := s.updateWithRetry(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("get room: %w", err)
		}

		var r domain.Room
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		}); err != nil {
			return fmt.Errorf("unmarshal room: %w", err)
		}

		r.Participants = append(r.Participants, p)

		data, err := json.Marshal(&r)
		if err != nil {
			return fmt.Errorf("marshal room: %w", err)
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}

		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// SetTimerState replaces a room's embedded timer state wholesale.
// Last write wins; no staleness detection.
func (s *Store) SetTimerState(ctx context.Context, roomID string, state domain.TimerState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(roomPrefix + roomID)

	return s.updateWithRetry(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("get room: %w", err)
		}

		var r domain.Room
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		}); err != nil {
			return fmt.Errorf("unmarshal room: %w", err)
		}

		r.TimerState = state

		data, err := json.Marshal(&r)
		if err != nil {
			return fmt.Errorf("marshal room: %w", err)
		}
		return txn.Set(key, data)
	})
}
