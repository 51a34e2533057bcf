// Package service implements the operation layer: input validation and
// orchestration between the HTTP surface and the document store.
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

// ProfileService provides identity record creation and lookup.
type ProfileService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(store *store.Store, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		logger: logger,
	}
}

// CreateProfile persists and returns a new profile.
// The name must be non-empty after trimming whitespace.
func (s *ProfileService) CreateProfile(ctx context.Context, name string, field domain.StudyField) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.Validation("İsim boş olamaz")
	}

	profileID, err := id.Generate("prof")
	if err != nil {
		return nil, fmt.Errorf("generate profile id: %w", err)
	}

	profile := domain.NewProfile(profileID, name, field)
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.logger.Info("profile created", "profile_id", profile.ID)
	return profile, nil
}

// GetProfile returns a profile by ID, or a not-found error when absent.
func (s *ProfileService) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile, err := s.store.GetProfile(ctx, profileID)
	if err != nil {
		if domainerrors.Is(err, store.ErrProfileNotFound) {
			return nil, domainerrors.NotFound("profile not found").WithCause(err)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}
