package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/neuronspark/spark-server/internal/domain"
)

// Key prefixes for program storage.
const (
	programPrefix          = "program:"              // program:{id} → Program JSON
	programByProfilePrefix = "idx:programs:profile:" // idx:programs:profile:{profileID}:{programID} → empty
)

// ErrProgramNotFound is returned when a program lookup yields no document.
var ErrProgramNotFound = errors.New("program not found")

// programProfileIndexKey builds the profile-ownership index key for a program.
func programProfileIndexKey(profileID, programID string) []byte {
	return []byte(programByProfilePrefix + profileID + ":" + programID)
}

// CreateProgram persists a new program document and its profile index entry.
func (s *Store) CreateProgram(ctx context.Context, p *domain.Program) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal program: %w", err)
	}

	key := []byte(programPrefix + p.ID)
	indexKey := programProfileIndexKey(p.ProfileID, p.ID)

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return errors.New("program already exists")
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check program exists: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(indexKey, []byte{})
	})
}

// GetProgram retrieves a program by ID.
// Returns ErrProgramNotFound if no document matches.
func (s *Store) GetProgram(ctx context.Context, id string) (*domain.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var p domain.Program
	if err := s.get([]byte(programPrefix+id), &p); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("get program: %w", err)
	}

	return &p, nil
}

// ListProgramsByProfile returns all programs owned by a profile in insertion
// order, capped at maxQueryLimit documents.
func (s *Store) ListProgramsByProfile(ctx context.Context, profileID string) ([]*domain.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Collect program IDs from the ownership index, then load documents.
	var ids []string
	prefix := []byte(programByProfilePrefix + profileID + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if len(ids) >= maxQueryLimit {
				break
			}
			key := string(it.Item().Key())
			ids = append(ids, key[len(prefix):])
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan program index: %w", err)
	}

	programs := make([]*domain.Program, 0, len(ids))
	for _, id := range ids {
		p, err := s.GetProgram(ctx, id)
		if err != nil {
			if errors.Is(err, ErrProgramNotFound) {
				continue // index entry outlived the document
			}
			return nil, err
		}
		programs = append(programs, p)
	}

	return programs, nil
}

// UpdateProgram overwrites an existing program document.
// Returns ErrProgramNotFound if the program does not exist.
func (s *Store) UpdateProgram(ctx context.Context, p *domain.Program) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal program: %w", err)
	}

	key := []byte(programPrefix + p.ID)

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrProgramNotFound
			}
			return fmt.Errorf("check program exists: %w", err)
		}
		return txn.Set(key, data)
	})
}

// DeleteProgram removes a program and its index entry.
// Idempotent: reports whether a document was actually removed.
func (s *Store) DeleteProgram(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	key := []byte(programPrefix + id)
	deleted := false

	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // nothing to delete
		}
		if err != nil {
			return fmt.Errorf("get program: %w", err)
		}

		// Need the document to find its index entry.
		var p domain.Program
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		}); err != nil {
			return fmt.Errorf("unmarshal program: %w", err)
		}

		if err := txn.Delete(programProfileIndexKey(p.ProfileID, p.ID)); err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}

		deleted = true
		return nil
	})

	return deleted, err
}
