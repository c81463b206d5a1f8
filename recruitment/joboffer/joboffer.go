package joboffer

import (
	"time"

	"github.com/talentflow/recruitment-api/pkg/kernel"
)

type JobOffer struct {
	ID          kernel.JobOfferID `db:"id" json:"id"`
	Title       string            `db:"title" json:"title"`
	Description string            `db:"description" json:"description"`
	SalaryRange *string           `db:"salary_range" json:"salary_range"`
	Location    *string           `db:"location" json:"location"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}
