package db

import (
	"time"

	"github.com/google/uuid"
)

// CandidateProfileRecord is the stored form of an LLM-parsed candidate
// profile. One record per user; re-parsing a resume replaces it.
type CandidateProfileRecord struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	Roles              []string  `json:"roles"`
	Skills             []string  `json:"skills,omitempty"`
	Seniority          string    `json:"seniority,omitempty"`
	LocationPreference string    `json:"location_preference,omitempty"`
	VisaOrWorkAuth     string    `json:"visa_or_work_auth,omitempty"`
	RemoteIntent       string    `json:"remote_intent,omitempty"`
	ResumeText         string    `json:"-"` // large, not serialized
	ParsedAt           time.Time `json:"parsed_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CandidateProfileUpsertInput is used when storing a parsed profile
type CandidateProfileUpsertInput struct {
	UserID             uuid.UUID
	Roles              []string
	Skills             []string
	Seniority          string
	LocationPreference string
	VisaOrWorkAuth     string
	RemoteIntent       string
	ResumeText         string
}
