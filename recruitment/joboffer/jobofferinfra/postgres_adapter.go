package jobofferinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/talentflow/recruitment-api/pkg/kernel"
	"github.com/talentflow/recruitment-api/recruitment/joboffer"
)

type PostgresJobOfferRepository struct {
	db *sqlx.DB
}

func NewPostgresJobOfferRepository(db *sqlx.DB) joboffer.Repository {
	return &PostgresJobOfferRepository{db: db}
}

const jobOfferColumns = `
	id, title, description, salary_range, location, created_at, updated_at
`

// Create inserts a new job offer
func (r *PostgresJobOfferRepository) Create(ctx context.Context, j *joboffer.JobOffer) error {
	query := `
		INSERT INTO job_offers (
			title, description, salary_range, location, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING id
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		j.Title,
		j.Description,
		j.SalaryRange,
		j.Location,
		j.CreatedAt,
		j.UpdatedAt,
	).Scan(&j.ID)
}

// Update updates an existing job offer
func (r *PostgresJobOfferRepository) Update(ctx context.Context, id kernel.JobOfferID, j *joboffer.JobOffer) error {
	query := `
		UPDATE job_offers
		SET
			title = $2,
			description = $3,
			salary_range = $4,
			location = $5,
			updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		j.Title,
		j.Description,
		j.SalaryRange,
		j.Location,
		j.UpdatedAt,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return joboffer.ErrJobOfferNotFound(id)
	}

	return nil
}

// GetByID retrieves a job offer by ID
func (r *PostgresJobOfferRepository) GetByID(ctx context.Context, id kernel.JobOfferID) (*joboffer.JobOffer, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_offers WHERE id = $1`, jobOfferColumns)

	var j joboffer.JobOffer
	err := r.db.GetContext(ctx, &j, query, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, joboffer.ErrJobOfferNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	return &j, nil
}

// Delete deletes a job offer by ID
func (r *PostgresJobOfferRepository) Delete(ctx context.Context, id kernel.JobOfferID) error {
	query := `DELETE FROM job_offers WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return joboffer.ErrJobOfferNotFound(id)
	}

	return nil
}

// ListAll retrieves all job offers, newest first
func (r *PostgresJobOfferRepository) ListAll(ctx context.Context) ([]joboffer.JobOffer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM job_offers
		ORDER BY created_at DESC
	`, jobOfferColumns)

	offers := make([]joboffer.JobOffer, 0)
	if err := r.db.SelectContext(ctx, &offers, query); err != nil {
		return nil, err
	}

	return offers, nil
}
