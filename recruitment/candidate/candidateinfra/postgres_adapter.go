package candidateinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/talentflow/recruitment-api/pkg/kernel"
	"github.com/talentflow/recruitment-api/recruitment/candidate"
)

// Postgres SQLSTATE codes translated into domain errors
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type PostgresCandidateRepository struct {
	db *sqlx.DB
}

func NewPostgresCandidateRepository(db *sqlx.DB) candidate.Repository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `
	id, first_name, last_name, email, phone, years_of_experience,
	recruiter_notes, status, consent_date, created_at, updated_at
`

// Create inserts the candidate and its job-offer association in one
// transaction. The unique index on email and the foreign key on the join
// table surface as domain errors here.
func (r *PostgresCandidateRepository) Create(ctx context.Context, c *candidate.Candidate, jobOfferID kernel.JobOfferID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO candidates (
			first_name, last_name, email, phone, years_of_experience,
			recruiter_notes, status, consent_date, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING id
	`

	err = tx.QueryRowContext(
		ctx,
		query,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.YearsOfExperience,
		c.RecruiterNotes,
		c.Status,
		c.ConsentDate,
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&c.ID)

	if err != nil {
		return translateConstraintError(err, c.Email)
	}

	joinQuery := `
		INSERT INTO candidate_job_offers (candidate_id, job_offer_id)
		VALUES ($1, $2)
	`

	if _, err := tx.ExecContext(ctx, joinQuery, c.ID, jobOfferID); err != nil {
		return translateConstraintError(err, c.Email)
	}

	return tx.Commit()
}

// Update updates an existing candidate
func (r *PostgresCandidateRepository) Update(ctx context.Context, id kernel.CandidateID, c *candidate.Candidate) error {
	query := `
		UPDATE candidates
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			phone = $5,
			years_of_experience = $6,
			recruiter_notes = $7,
			status = $8,
			consent_date = $9,
			updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.YearsOfExperience,
		c.RecruiterNotes,
		c.Status,
		c.ConsentDate,
		c.UpdatedAt,
	)

	if err != nil {
		return translateConstraintError(err, c.Email)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound(id)
	}

	return nil
}

// GetByID retrieves a candidate by ID
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE id = $1`, candidateColumns)

	var c candidate.Candidate
	err := r.db.GetContext(ctx, &c, query, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, candidate.ErrCandidateNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// GetByEmail retrieves a candidate by email; a miss returns (nil, nil)
func (r *PostgresCandidateRepository) GetByEmail(ctx context.Context, email kernel.Email) (*candidate.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE email = $1`, candidateColumns)

	var c candidate.Candidate
	err := r.db.GetContext(ctx, &c, query, email)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Delete deletes a candidate by ID. The join row goes with it via the
// ON DELETE CASCADE on candidate_job_offers.
func (r *PostgresCandidateRepository) Delete(ctx context.Context, id kernel.CandidateID) error {
	query := `DELETE FROM candidates WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound(id)
	}

	return nil
}

// List retrieves one page of candidates plus the total count matching the
// same status filter
func (r *PostgresCandidateRepository) List(ctx context.Context, req candidate.ListCandidatesRequest) ([]candidate.Candidate, int, error) {
	whereSQL := ""
	countArgs := []interface{}{}
	if req.Status != nil {
		whereSQL = "WHERE status = $1"
		countArgs = append(countArgs, *req.Status)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM candidates %s`, whereSQL)
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	args := append([]interface{}{}, countArgs...)
	query := fmt.Sprintf(`
		SELECT %s
		FROM candidates
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, candidateColumns, whereSQL, len(args)+1, len(args)+2)
	args = append(args, req.Pagination.Limit, req.Pagination.Offset())

	candidates := make([]candidate.Candidate, 0)
	if err := r.db.SelectContext(ctx, &candidates, query, args...); err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

// ListAll retrieves all candidates, newest first
func (r *PostgresCandidateRepository) ListAll(ctx context.Context) ([]candidate.Candidate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM candidates
		ORDER BY created_at DESC
	`, candidateColumns)

	candidates := make([]candidate.Candidate, 0)
	if err := r.db.SelectContext(ctx, &candidates, query); err != nil {
		return nil, err
	}

	return candidates, nil
}

// ListByStatus retrieves all candidates in the given status, newest first
func (r *PostgresCandidateRepository) ListByStatus(ctx context.Context, status candidate.RecruitmentStatus) ([]candidate.Candidate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM candidates
		WHERE status = $1
		ORDER BY created_at DESC
	`, candidateColumns)

	candidates := make([]candidate.Candidate, 0)
	if err := r.db.SelectContext(ctx, &candidates, query, status); err != nil {
		return nil, err
	}

	return candidates, nil
}

// translateConstraintError maps Postgres constraint violations to domain
// errors: the email unique index becomes the same conflict as the service
// pre-check, and foreign key violations on the join table become the
// invalid-reference validation error. Anything else passes through raw for
// the service layer to classify as internal.
func translateConstraintError(err error, email kernel.Email) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pgUniqueViolation:
		return candidate.ErrCandidateAlreadyExists(email)
	case pgForeignKeyViolation:
		return candidate.ErrInvalidReference()
	default:
		return err
	}
}
