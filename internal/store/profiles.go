package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/neuronspark/spark-server/internal/domain"
)

// profilePrefix keys profile documents: profile:{id} → Profile JSON.
const profilePrefix = "profile:"

// ErrProfileNotFound is returned when a profile lookup yields no document.
var ErrProfileNotFound = errors.New("profile not found")

// CreateProfile persists a new profile document.
func (s *Store) CreateProfile(ctx context.Context, p *domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(profilePrefix + p.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check profile exists: %w", err)
	}
	if exists {
		return errors.New("profile already exists")
	}

	if err := s.set(key, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by ID.
// Returns ErrProfileNotFound if no document matches.
func (s *Store) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var p domain.Profile
	if err := s.get([]byte(profilePrefix+id), &p); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &p, nil
}
