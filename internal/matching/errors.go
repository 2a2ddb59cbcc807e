package matching

import "errors"

// Sentinel errors for sync orchestration outcomes.
var (
	// ErrProfileNotFound indicates the user has no stored candidate profile;
	// a resume must be parsed first.
	ErrProfileNotFound = errors.New("candidate profile not found")

	// ErrNoRoles indicates the stored profile has no usable roles after
	// trimming.
	ErrNoRoles = errors.New("candidate profile has no roles")

	// ErrDuplicateJob indicates the job store's uniqueness constraint
	// rejected an insert. Expected during repeated syncs, counted rather
	// than surfaced.
	ErrDuplicateJob = errors.New("job already stored for user")
)
