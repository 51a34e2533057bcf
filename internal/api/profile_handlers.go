package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neuronspark/spark-server/internal/domain"
)

func (s *Server) registerProfileRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createProfile",
		Method:      http.MethodPost,
		Path:        "/api/profiles",
		Summary:     "Create profile",
		Description: "Creates a new student profile",
		Tags:        []string{"Profiles"},
	}, s.handleCreateProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "getProfile",
		Method:      http.MethodGet,
		Path:        "/api/profiles/{id}",
		Summary:     "Get profile",
		Description: "Returns a profile by ID",
		Tags:        []string{"Profiles"},
	}, s.handleGetProfile)
}

// === DTOs ===

// ProfileResponse contains profile data in API responses.
type ProfileResponse struct {
	ID         string    `json:"id" doc:"Profile ID"`
	Name       string    `json:"name" doc:"Student display name"`
	StudyField string    `json:"study_field" doc:"Study track (Sayısal, EA or Sözel)"`
	CreatedAt  time.Time `json:"created_at" doc:"Creation time"`
}

// ProfileOutput wraps the profile response for Huma.
type ProfileOutput struct {
	Body ProfileResponse
}

// CreateProfileRequest is the request body for creating a profile.
type CreateProfileRequest struct {
	Name       string `json:"name" validate:"max=100" doc:"Student display name"`
	StudyField string `json:"study_field,omitempty" validate:"max=30" doc:"Study track"`
}

// CreateProfileInput wraps the create profile request for Huma.
type CreateProfileInput struct {
	Body CreateProfileRequest
}

// GetProfileInput contains parameters for getting a profile.
type GetProfileInput struct {
	ID string `path:"id" doc:"Profile ID"`
}

func profileToResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:         p.ID,
		Name:       p.Name,
		StudyField: string(p.StudyField),
		CreatedAt:  p.CreatedAt,
	}
}

// === Handlers ===

func (s *Server) handleCreateProfile(ctx context.Context, input *CreateProfileInput) (*ProfileOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	profile, err := s.services.Profile.CreateProfile(ctx, input.Body.Name, domain.StudyField(input.Body.StudyField))
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{Body: profileToResponse(profile)}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, input *GetProfileInput) (*ProfileOutput, error) {
	profile, err := s.services.Profile.GetProfile(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{Body: profileToResponse(profile)}, nil
}
