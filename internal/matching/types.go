// Package matching implements the job normalization, deduplication, and sync
// pipeline that turns a stored candidate profile into persisted job matches.
package matching

import "time"

// RawJob is one untyped job record as returned by the upstream search
// provider. No keys are guaranteed to be present.
type RawJob map[string]any

// RemoteType classifies a job's work arrangement.
type RemoteType string

// RemoteType constants
const (
	RemoteTypeRemote  RemoteType = "remote"
	RemoteTypeHybrid  RemoteType = "hybrid"
	RemoteTypeOnsite  RemoteType = "onsite"
	RemoteTypeUnknown RemoteType = "unknown"
)

// SourceJSearch is the provider tag stamped on every normalized record.
const SourceJSearch = "jsearch"

// NormalizedJob is the canonical internal job record. It is created once per
// sync run from a RawJob and never mutated afterwards.
type NormalizedJob struct {
	Source         string     `json:"source"`
	ExternalJobID  string     `json:"external_job_id,omitempty"`
	ApplyURL       string     `json:"apply_url,omitempty"`
	Title          string     `json:"title"`
	CompanyName    string     `json:"company_name,omitempty"`
	CompanyWebsite string     `json:"company_website,omitempty"`
	LocationText   string     `json:"location_text,omitempty"`
	Country        string     `json:"country,omitempty"`
	City           string     `json:"city,omitempty"`
	Region         string     `json:"region,omitempty"`
	IsRemote       bool       `json:"is_remote"`
	RemoteType     RemoteType `json:"remote_type"`
	EmploymentType string     `json:"employment_type,omitempty"`
	Description    string     `json:"description,omitempty"`
	PostedAt       *time.Time `json:"posted_at,omitempty"`
	SalaryMin      *float64   `json:"salary_min,omitempty"`
	SalaryMax      *float64   `json:"salary_max,omitempty"`
	SalaryCurrency string     `json:"salary_currency,omitempty"`
	SalaryPeriod   string     `json:"salary_period,omitempty"`

	// Raw preserves the upstream record verbatim for audit/debugging.
	Raw RawJob `json:"raw,omitempty"`
}

// SyncSummary reports the outcome of one sync run.
type SyncSummary struct {
	Roles            []string `json:"roles"`
	Fetched          int      `json:"fetched"`
	Normalized       int      `json:"normalized"`
	Deduped          int      `json:"deduped"`
	Inserted         int      `json:"inserted"`
	SkippedDuplicate int      `json:"skipped_duplicate"`
	Failed           int      `json:"failed"`
}
