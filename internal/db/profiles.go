package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-scout/internal/types"
)

// UpsertCandidateProfile stores a parsed candidate profile, replacing any
// previous profile for the user
func (db *DB) UpsertCandidateProfile(ctx context.Context, input *CandidateProfileUpsertInput) (*CandidateProfileRecord, error) {
	rolesJSON, err := json.Marshal(input.Roles)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roles: %w", err)
	}
	skillsJSON, err := json.Marshal(input.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	var rec CandidateProfileRecord
	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidate_profiles (user_id, roles, skills, seniority, location_preference,
		                                 visa_or_work_auth, remote_intent, resume_text, parsed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		     roles = $2,
		     skills = $3,
		     seniority = $4,
		     location_preference = $5,
		     visa_or_work_auth = $6,
		     remote_intent = $7,
		     resume_text = $8,
		     parsed_at = NOW(),
		     updated_at = NOW()
		 RETURNING id, user_id, parsed_at, created_at, updated_at`,
		input.UserID, rolesJSON, skillsJSON, nullIfEmpty(input.Seniority),
		nullIfEmpty(input.LocationPreference), nullIfEmpty(input.VisaOrWorkAuth),
		nullIfEmpty(input.RemoteIntent), nullIfEmpty(input.ResumeText),
	).Scan(&rec.ID, &rec.UserID, &rec.ParsedAt, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert candidate profile: %w", err)
	}

	rec.Roles = input.Roles
	rec.Skills = input.Skills
	rec.Seniority = input.Seniority
	rec.LocationPreference = input.LocationPreference
	rec.VisaOrWorkAuth = input.VisaOrWorkAuth
	rec.RemoteIntent = input.RemoteIntent
	return &rec, nil
}

// GetCandidateProfile retrieves the stored profile for a user, or nil when
// none exists. This satisfies matching.ProfileStore.
func (db *DB) GetCandidateProfile(ctx context.Context, userID uuid.UUID) (*types.CandidateProfile, error) {
	rec, err := db.GetCandidateProfileRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	return &types.CandidateProfile{
		Roles:              rec.Roles,
		Skills:             rec.Skills,
		Seniority:          rec.Seniority,
		LocationPreference: rec.LocationPreference,
		VisaOrWorkAuth:     rec.VisaOrWorkAuth,
		RemoteIntent:       rec.RemoteIntent,
		ParsedAt:           rec.ParsedAt,
	}, nil
}

// GetCandidateProfileRecord retrieves the full stored profile row for a user
func (db *DB) GetCandidateProfileRecord(ctx context.Context, userID uuid.UUID) (*CandidateProfileRecord, error) {
	var rec CandidateProfileRecord
	var rolesJSON, skillsJSON []byte
	var seniority, location, visa, remoteIntent, resumeText *string

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, roles, skills, seniority, location_preference,
		        visa_or_work_auth, remote_intent, resume_text, parsed_at, created_at, updated_at
		 FROM candidate_profiles WHERE user_id = $1`,
		userID,
	).Scan(&rec.ID, &rec.UserID, &rolesJSON, &skillsJSON, &seniority, &location,
		&visa, &remoteIntent, &resumeText, &rec.ParsedAt, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate profile: %w", err)
	}

	if rolesJSON != nil {
		_ = json.Unmarshal(rolesJSON, &rec.Roles)
	}
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &rec.Skills)
	}
	if seniority != nil {
		rec.Seniority = *seniority
	}
	if location != nil {
		rec.LocationPreference = *location
	}
	if visa != nil {
		rec.VisaOrWorkAuth = *visa
	}
	if remoteIntent != nil {
		rec.RemoteIntent = *remoteIntent
	}
	if resumeText != nil {
		rec.ResumeText = *resumeText
	}

	return &rec, nil
}
