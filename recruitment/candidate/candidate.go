package candidate

import (
	"fmt"
	"time"

	"github.com/talentflow/recruitment-api/pkg/kernel"
)

// RecruitmentStatus represents the pipeline stage of a candidate
type RecruitmentStatus string

const (
	StatusNew        RecruitmentStatus = "NEW"         // Just registered
	StatusInProgress RecruitmentStatus = "IN_PROGRESS" // Screening in progress
	StatusInterview  RecruitmentStatus = "INTERVIEW"   // Interview scheduled or done
	StatusOffer      RecruitmentStatus = "OFFER"       // Offer extended
	StatusHired      RecruitmentStatus = "HIRED"       // Offer accepted
	StatusRejected   RecruitmentStatus = "REJECTED"    // Out of the pipeline
)

// IsValid checks whether the status is a known pipeline stage
func (s RecruitmentStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusInterview, StatusOffer, StatusHired, StatusRejected:
		return true
	default:
		return false
	}
}

type Candidate struct {
	ID                kernel.CandidateID `db:"id" json:"id"`
	FirstName         string             `db:"first_name" json:"first_name"`
	LastName          string             `db:"last_name" json:"last_name"`
	Email             kernel.Email       `db:"email" json:"email"`
	Phone             kernel.Phone       `db:"phone" json:"phone"`
	YearsOfExperience int                `db:"years_of_experience" json:"years_of_experience"`
	RecruiterNotes    *string            `db:"recruiter_notes" json:"recruiter_notes"`
	Status            RecruitmentStatus  `db:"status" json:"status"`
	ConsentDate       time.Time          `db:"consent_date" json:"consent_date"`
	CreatedAt         time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// GetFullName returns the candidate's full name
func (c *Candidate) GetFullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// IsInPipeline checks if the candidate is still being considered
func (c *Candidate) IsInPipeline() bool {
	return c.Status != StatusHired && c.Status != StatusRejected
}
