package candidate

import (
	"time"

	"github.com/talentflow/recruitment-api/pkg/kernel"
)

// CreateCandidateRequest - DTO for creating a new candidate
type CreateCandidateRequest struct {
	FirstName         string             `json:"firstName" validate:"required,min=2,max=100"`
	LastName          string             `json:"lastName" validate:"required,min=2,max=100"`
	Email             kernel.Email       `json:"email" validate:"required,email"`
	Phone             kernel.Phone       `json:"phone" validate:"required,min=7,max=20"`
	YearsOfExperience int                `json:"yearsOfExperience" validate:"required,gt=0"`
	RecruiterNotes    *string            `json:"recruiterNotes,omitempty" validate:"omitempty,max=1000"`
	Status            *RecruitmentStatus `json:"status,omitempty" validate:"omitempty,oneof=NEW IN_PROGRESS INTERVIEW OFFER HIRED REJECTED"`
	ConsentDate       time.Time          `json:"consentDate" validate:"required"`
	JobOfferID        kernel.JobOfferID  `json:"jobOfferId" validate:"required,gt=0"`
}

// UpdateCandidateRequest - DTO for partially updating a candidate.
// Absent fields are left untouched.
type UpdateCandidateRequest struct {
	FirstName         *string            `json:"firstName,omitempty" validate:"omitempty,min=2,max=100"`
	LastName          *string            `json:"lastName,omitempty" validate:"omitempty,min=2,max=100"`
	Email             *kernel.Email      `json:"email,omitempty" validate:"omitempty,email"`
	Phone             *kernel.Phone      `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	YearsOfExperience *int               `json:"yearsOfExperience,omitempty" validate:"omitempty,gt=0"`
	RecruiterNotes    *string            `json:"recruiterNotes,omitempty" validate:"omitempty,max=1000"`
	Status            *RecruitmentStatus `json:"status,omitempty" validate:"omitempty,oneof=NEW IN_PROGRESS INTERVIEW OFFER HIRED REJECTED"`
	ConsentDate       *time.Time         `json:"consentDate,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all
func (r UpdateCandidateRequest) IsEmpty() bool {
	return r.FirstName == nil &&
		r.LastName == nil &&
		r.Email == nil &&
		r.Phone == nil &&
		r.YearsOfExperience == nil &&
		r.RecruiterNotes == nil &&
		r.Status == nil &&
		r.ConsentDate == nil
}

// ListCandidatesRequest - DTO for the paginated listing
type ListCandidatesRequest struct {
	Pagination kernel.PaginationOptions
	Status     *RecruitmentStatus
}

// CandidateResponse - DTO for returning candidate data. RecruiterNotes is
// serialized as explicit null when absent.
type CandidateResponse struct {
	ID                kernel.CandidateID `json:"id"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	Email             kernel.Email       `json:"email"`
	Phone             kernel.Phone       `json:"phone"`
	YearsOfExperience int                `json:"yearsOfExperience"`
	RecruiterNotes    *string            `json:"recruiterNotes"`
	Status            RecruitmentStatus  `json:"status"`
	ConsentDate       time.Time          `json:"consentDate"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// Response type alias for paginated candidates
type PaginatedCandidatesResponse = kernel.Paginated[CandidateResponse]

// NewCandidateResponse shapes a persisted candidate into its external
// representation. Pure mapping, no business logic.
func NewCandidateResponse(c *Candidate) *CandidateResponse {
	return &CandidateResponse{
		ID:                c.ID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Phone:             c.Phone,
		YearsOfExperience: c.YearsOfExperience,
		RecruiterNotes:    c.RecruiterNotes,
		Status:            c.Status,
		ConsentDate:       c.ConsentDate,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
