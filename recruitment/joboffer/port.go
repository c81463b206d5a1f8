package joboffer

import (
	"context"

	"github.com/talentflow/recruitment-api/pkg/kernel"
)

type Repository interface {
	// Create persists a new job offer, filling the generated ID
	Create(ctx context.Context, j *JobOffer) error

	// Update persists the given job offer state under id
	Update(ctx context.Context, id kernel.JobOfferID, j *JobOffer) error

	// GetByID retrieves a job offer by ID
	GetByID(ctx context.Context, id kernel.JobOfferID) (*JobOffer, error)

	// Delete physically deletes a job offer by ID
	Delete(ctx context.Context, id kernel.JobOfferID) error

	// ListAll retrieves all job offers ordered by creation time descending
	ListAll(ctx context.Context) ([]JobOffer, error)
}
