package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jonathan/job-scout/internal/matching"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// InsertMatchedJob persists one normalized job for a user. The table's
// UNIQUE (user_id, source, dedupe_ref) constraint is the sole cross-run
// duplicate-suppression mechanism; a violation maps to
// matching.ErrDuplicateJob so the orchestrator can count it rather than
// treat it as a failure. This satisfies matching.JobStore.
func (db *DB) InsertMatchedJob(ctx context.Context, userID uuid.UUID, job *matching.NormalizedJob) error {
	ref := dedupeRef(job)
	if ref == "" {
		return fmt.Errorf("job has no external ID or apply URL")
	}

	rawJSON, err := json.Marshal(job.Raw)
	if err != nil {
		return fmt.Errorf("failed to marshal raw record: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO matched_jobs (user_id, source, dedupe_ref, external_job_id, apply_url,
		                           title, company_name, company_website, location_text,
		                           country, city, region, is_remote, remote_type,
		                           employment_type, description, posted_at,
		                           salary_min, salary_max, salary_currency, salary_period, raw)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		         $15, $16, $17, $18, $19, $20, $21, $22)`,
		userID, job.Source, ref, nullIfEmpty(job.ExternalJobID), nullIfEmpty(job.ApplyURL),
		job.Title, nullIfEmpty(job.CompanyName), nullIfEmpty(job.CompanyWebsite),
		nullIfEmpty(job.LocationText), nullIfEmpty(job.Country), nullIfEmpty(job.City),
		nullIfEmpty(job.Region), job.IsRemote, string(job.RemoteType),
		nullIfEmpty(job.EmploymentType), nullIfEmpty(job.Description), job.PostedAt,
		job.SalaryMin, job.SalaryMax, nullIfEmpty(job.SalaryCurrency),
		nullIfEmpty(job.SalaryPeriod), rawJSON,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return matching.ErrDuplicateJob
		}
		return fmt.Errorf("failed to insert matched job: %w", err)
	}
	return nil
}

// ListMatchedJobsOptions contains filters for listing matched jobs
type ListMatchedJobsOptions struct {
	RemoteType string // Filter by remote type (remote, hybrid, onsite)
	Limit      int    // Pagination limit
	Offset     int    // Pagination offset
}

// ListMatchedJobs lists a user's matched jobs, newest first
func (db *DB) ListMatchedJobs(ctx context.Context, userID uuid.UUID, opts ListMatchedJobsOptions) ([]MatchedJob, int, error) {
	whereClause := "WHERE user_id = $1"
	args := []any{userID}
	argNum := 2

	if opts.RemoteType != "" {
		whereClause += fmt.Sprintf(" AND remote_type = $%d", argNum)
		args = append(args, opts.RemoteType)
		argNum++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM matched_jobs %s", whereClause)
	var total int
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count matched jobs: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT id, user_id, source, external_job_id, apply_url, title, company_name,
		        company_website, location_text, country, city, region, is_remote,
		        remote_type, employment_type, description, posted_at,
		        salary_min, salary_max, salary_currency, salary_period, created_at
		 FROM matched_jobs %s
		 ORDER BY created_at DESC, id
		 LIMIT $%d OFFSET $%d`,
		whereClause, argNum, argNum+1,
	)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list matched jobs: %w", err)
	}
	defer rows.Close()

	var jobs []MatchedJob
	for rows.Next() {
		var j MatchedJob
		var externalID, applyURL, company, website, location, country, city, region *string
		var employmentType, description, currency, period *string
		var remoteType string

		err := rows.Scan(&j.ID, &j.UserID, &j.Source, &externalID, &applyURL, &j.Title,
			&company, &website, &location, &country, &city, &region, &j.IsRemote,
			&remoteType, &employmentType, &description, &j.PostedAt,
			&j.SalaryMin, &j.SalaryMax, &currency, &period, &j.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan matched job: %w", err)
		}

		j.RemoteType = matching.RemoteType(remoteType)
		j.ExternalJobID = deref(externalID)
		j.ApplyURL = deref(applyURL)
		j.CompanyName = deref(company)
		j.CompanyWebsite = deref(website)
		j.LocationText = deref(location)
		j.Country = deref(country)
		j.City = deref(city)
		j.Region = deref(region)
		j.EmploymentType = deref(employmentType)
		j.Description = deref(description)
		j.SalaryCurrency = deref(currency)
		j.SalaryPeriod = deref(period)

		jobs = append(jobs, j)
	}

	return jobs, total, nil
}

// deref returns the string value or "" for nil
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
