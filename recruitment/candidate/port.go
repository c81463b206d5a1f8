package candidate

import (
	"context"

	"github.com/talentflow/recruitment-api/pkg/kernel"
)

type Repository interface {
	// Create persists a new candidate and its job-offer association in a
	// single transaction, filling the generated ID and timestamps.
	Create(ctx context.Context, c *Candidate, jobOfferID kernel.JobOfferID) error

	// Update persists the given candidate state under id
	Update(ctx context.Context, id kernel.CandidateID, c *Candidate) error

	// GetByID retrieves a candidate by ID
	GetByID(ctx context.Context, id kernel.CandidateID) (*Candidate, error)

	// GetByEmail retrieves a candidate by email. A miss returns (nil, nil),
	// not an error, so uniqueness pre-checks can distinguish absence from
	// storage failure.
	GetByEmail(ctx context.Context, email kernel.Email) (*Candidate, error)

	// Delete physically deletes a candidate by ID
	Delete(ctx context.Context, id kernel.CandidateID) error

	// List retrieves one page ordered by creation time descending, with
	// the total row count matching the same status filter
	List(ctx context.Context, req ListCandidatesRequest) ([]Candidate, int, error)

	// ListAll retrieves all candidates ordered by creation time descending
	ListAll(ctx context.Context) ([]Candidate, error)

	// ListByStatus retrieves all candidates in the given pipeline stage,
	// newest first
	ListByStatus(ctx context.Context, status RecruitmentStatus) ([]Candidate, error)
}

// SyncOutcome is the result of a legacy-system notification attempt.
// All failure paths resolve to an outcome; the sync never raises.
type SyncOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LegacySyncer notifies the external legacy system of new candidates.
// Outcomes are advisory only; callers must never fail on them.
type LegacySyncer interface {
	SendCandidate(ctx context.Context, firstName, lastName string, email kernel.Email) SyncOutcome

	// HealthCheck probes the legacy system root endpoint, swallowing all
	// errors to false
	HealthCheck(ctx context.Context) bool
}
