// Package types provides type definitions for structured data used throughout the job-scout system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CandidateProfile is the structured profile extracted from a resume by the
// LLM parser. It is owned by the profile store and read-only to the matching
// pipeline.
type CandidateProfile struct {
	Roles              []string  `json:"roles" validate:"required,min=1,dive,min=1"`
	Skills             []string  `json:"skills"`
	Seniority          string    `json:"seniority"`
	LocationPreference string    `json:"location_preference"`
	VisaOrWorkAuth     string    `json:"visa_or_work_auth"`
	RemoteIntent       string    `json:"remote_intent"`
	ParsedAt           time.Time `json:"parsed_at,omitempty"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
