package matching

// DedupeKey derives the identity key used to detect duplicate postings
// within a batch: source + external job ID when available, else source +
// apply URL. The second return value is false when neither identifier exists;
// such records can never be deduplicated safely nor matched against storage,
// so callers must exclude them.
func DedupeKey(job *NormalizedJob) (string, bool) {
	switch {
	case job.ExternalJobID != "":
		return job.Source + ":" + job.ExternalJobID, true
	case job.ApplyURL != "":
		return job.Source + ":" + job.ApplyURL, true
	default:
		return "", false
	}
}

// Dedupe removes later duplicates from a batch of normalized jobs,
// preserving the relative order of first occurrences. Unkeyable records are
// dropped. Deduplication is intra-batch only; cross-run suppression is the
// storage layer's uniqueness constraint.
func Dedupe(jobs []NormalizedJob) []NormalizedJob {
	seen := make(map[string]struct{}, len(jobs))
	kept := make([]NormalizedJob, 0, len(jobs))

	for i := range jobs {
		key, ok := DedupeKey(&jobs[i])
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, jobs[i])
	}
	return kept
}
