package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-scout/internal/matching"
)

// MatchedJob represents a normalized job persisted for a user
type MatchedJob struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uuid.UUID           `json:"user_id"`
	Source         string              `json:"source"`
	ExternalJobID  string              `json:"external_job_id,omitempty"`
	ApplyURL       string              `json:"apply_url,omitempty"`
	Title          string              `json:"title"`
	CompanyName    string              `json:"company_name,omitempty"`
	CompanyWebsite string              `json:"company_website,omitempty"`
	LocationText   string              `json:"location_text,omitempty"`
	Country        string              `json:"country,omitempty"`
	City           string              `json:"city,omitempty"`
	Region         string              `json:"region,omitempty"`
	IsRemote       bool                `json:"is_remote"`
	RemoteType     matching.RemoteType `json:"remote_type"`
	EmploymentType string              `json:"employment_type,omitempty"`
	Description    string              `json:"description,omitempty"`
	PostedAt       *time.Time          `json:"posted_at,omitempty"`
	SalaryMin      *float64            `json:"salary_min,omitempty"`
	SalaryMax      *float64            `json:"salary_max,omitempty"`
	SalaryCurrency string              `json:"salary_currency,omitempty"`
	SalaryPeriod   string              `json:"salary_period,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

// dedupeRef derives the identifier column value enforcing per-user
// uniqueness: external job ID when present, else apply URL.
func dedupeRef(job *matching.NormalizedJob) string {
	if job.ExternalJobID != "" {
		return job.ExternalJobID
	}
	return job.ApplyURL
}
