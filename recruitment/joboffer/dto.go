package joboffer

import (
	"time"

	"github.com/talentflow/recruitment-api/pkg/kernel"
)

// CreateJobOfferRequest - DTO for creating a new job offer
type CreateJobOfferRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"required,min=10,max=2000"`
	SalaryRange *string `json:"salaryRange,omitempty" validate:"omitempty,min=5,max=100"`
	Location    *string `json:"location,omitempty" validate:"omitempty,min=2,max=100"`
}

// UpdateJobOfferRequest - DTO for partially updating a job offer
type UpdateJobOfferRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=10,max=2000"`
	SalaryRange *string `json:"salaryRange,omitempty" validate:"omitempty,min=5,max=100"`
	Location    *string `json:"location,omitempty" validate:"omitempty,min=2,max=100"`
}

// IsEmpty reports whether the update carries no fields at all
func (r UpdateJobOfferRequest) IsEmpty() bool {
	return r.Title == nil &&
		r.Description == nil &&
		r.SalaryRange == nil &&
		r.Location == nil
}

// JobOfferResponse - DTO for returning job offer data. Nullable fields
// are serialized as explicit null.
type JobOfferResponse struct {
	ID          kernel.JobOfferID `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	SalaryRange *string           `json:"salaryRange"`
	Location    *string           `json:"location"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NewJobOfferResponse shapes a persisted job offer into its external
// representation
func NewJobOfferResponse(j *JobOffer) *JobOfferResponse {
	return &JobOfferResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		SalaryRange: j.SalaryRange,
		Location:    j.Location,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}
