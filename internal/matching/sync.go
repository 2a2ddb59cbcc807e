package matching

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-scout/internal/types"
)

// ProfileStore loads stored candidate profiles.
type ProfileStore interface {
	// GetCandidateProfile returns nil without error when no profile exists.
	GetCandidateProfile(ctx context.Context, userID uuid.UUID) (*types.CandidateProfile, error)
}

// JobStore persists normalized jobs under a per-user uniqueness constraint.
type JobStore interface {
	// InsertMatchedJob returns ErrDuplicateJob when the store's uniqueness
	// constraint rejects the record. The constraint is the sole cross-run
	// duplicate-suppression mechanism, so the store must report duplicates
	// distinguishably.
	InsertMatchedJob(ctx context.Context, userID uuid.UUID, job *NormalizedJob) error
}

// Provider performs one upstream job search.
type Provider interface {
	Search(ctx context.Context, query string) ([]RawJob, error)
}

// Syncer orchestrates one sync run: query build, upstream fetch, normalize,
// dedupe, persist.
type Syncer struct {
	profiles ProfileStore
	jobs     JobStore
	provider Provider
}

// NewSyncer creates a Syncer with the given collaborators.
func NewSyncer(profiles ProfileStore, jobs JobStore, provider Provider) *Syncer {
	return &Syncer{
		profiles: profiles,
		jobs:     jobs,
		provider: provider,
	}
}

// Run executes one sync for the user. It fails as a whole only on profile
// lookup problems or an upstream search failure; per-record insert failures
// are counted and do not abort the batch.
func (s *Syncer) Run(ctx context.Context, userID uuid.UUID) (*SyncSummary, error) {
	profile, err := s.profiles.GetCandidateProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	roles := SelectRoles(profile.Roles)
	if len(roles) == 0 {
		return nil, ErrNoRoles
	}

	summary := &SyncSummary{Roles: roles}

	// One upstream search per role. Fetches run concurrently but the
	// combined batch is assembled in role order, so normalization and dedup
	// see a deterministic sequence. Any query failure aborts the run.
	batches := make([][]RawJob, len(roles))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, role := range roles {
		i := i
		query := BuildQuery(role, profile.LocationPreference, profile.RemoteIntent)
		group.Go(func() error {
			results, err := s.provider.Search(groupCtx, query)
			if err != nil {
				return fmt.Errorf("search %q failed: %w", query, err)
			}
			batches[i] = results
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var combined []RawJob
	for _, batch := range batches {
		combined = append(combined, batch...)
	}
	summary.Fetched = len(combined)

	normalized := make([]NormalizedJob, 0, len(combined))
	for _, raw := range combined {
		job, ok := Normalize(raw)
		if !ok {
			continue
		}
		normalized = append(normalized, *job)
	}
	summary.Normalized = len(normalized)

	deduped := Dedupe(normalized)
	summary.Deduped = len(deduped)

	// Every record gets an independent insert attempt: a duplicate or a bad
	// record must not block the rest of the batch.
	for i := range deduped {
		err := s.jobs.InsertMatchedJob(ctx, userID, &deduped[i])
		switch {
		case err == nil:
			summary.Inserted++
		case errors.Is(err, ErrDuplicateJob):
			summary.SkippedDuplicate++
		default:
			summary.Failed++
			log.Printf("sync: failed to insert job (user=%s source=%s external_id=%q apply_url=%q): %v",
				userID, deduped[i].Source, deduped[i].ExternalJobID, deduped[i].ApplyURL, err)
		}
	}

	return summary, nil
}
