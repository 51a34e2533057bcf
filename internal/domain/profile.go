// Package domain defines the entities of the study-planning application:
// profiles, generated study programs, collaborative rooms, and chat messages.
package domain

import "time"

// StudyField is the academic-focus tag attached to a profile or participant.
type StudyField string

// Recognized study fields.
const (
	StudyFieldSayisal StudyField = "Sayısal"
	StudyFieldEA      StudyField = "EA"
	StudyFieldSozel   StudyField = "Sözel"
)

// Valid reports whether the study field is one of the recognized tags.
// The empty value is valid — the tag is optional everywhere it appears.
func (f StudyField) Valid() bool {
	switch f {
	case "", StudyFieldSayisal, StudyFieldEA, StudyFieldSozel:
		return true
	}
	return false
}

// Profile is a minimal identity record. Immutable after creation.
type Profile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	StudyField StudyField `json:"study_field,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewProfile creates a profile with the given identity and a creation timestamp.
func NewProfile(id, name string, field StudyField) *Profile {
	return &Profile{
		ID:         id,
		Name:       name,
		StudyField: field,
		CreatedAt:  time.Now().UTC(),
	}
}
