package candidatesrv

import (
	"context"
	"time"

	"github.com/talentflow/recruitment-api/pkg/errx"
	"github.com/talentflow/recruitment-api/pkg/kernel"
	"github.com/talentflow/recruitment-api/pkg/logx"
	"github.com/talentflow/recruitment-api/recruitment/candidate"
)

const (
	maxPageLimit = 100
)

// CandidateService provides business operations for candidates
type CandidateService struct {
	candidateRepo candidate.Repository
	legacySyncer  candidate.LegacySyncer
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(
	candidateRepo candidate.Repository,
	legacySyncer candidate.LegacySyncer,
) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		legacySyncer:  legacySyncer,
	}
}

// CreateCandidate creates a new candidate together with its job-offer
// association, then notifies the legacy system on a detached goroutine.
// The sync outcome never influences the returned result.
func (s *CandidateService) CreateCandidate(ctx context.Context, req candidate.CreateCandidateRequest) (*candidate.CandidateResponse, error) {
	// Uniqueness pre-check. The unique constraint on candidates.email is
	// the authoritative backstop for concurrent creates; the repository
	// maps its violation to the same conflict error.
	existing, err := s.candidateRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logx.Errorf("Error checking existing candidate by email %s: %v", req.Email, err)
		return nil, candidate.ErrRegistry.NewWithCause(candidate.CodeCreateFailed, err)
	}
	if existing != nil {
		return nil, candidate.ErrCandidateAlreadyExists(req.Email)
	}

	status := candidate.StatusNew
	if req.Status != nil {
		status = *req.Status
	}

	now := time.Now()
	newCandidate := &candidate.Candidate{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		YearsOfExperience: req.YearsOfExperience,
		RecruiterNotes:    req.RecruiterNotes,
		Status:            status,
		ConsentDate:       req.ConsentDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.candidateRepo.Create(ctx, newCandidate, req.JobOfferID); err != nil {
		if e, ok := err.(*errx.Error); ok && e.Type != errx.TypeInternal {
			return nil, e
		}
		logx.Errorf("Error creating candidate: %v", err)
		return nil, candidate.ErrRegistry.NewWithCause(candidate.CodeCreateFailed, err)
	}

	logx.Infof("Candidate created successfully with ID %d", newCandidate.ID.Int64())

	go s.syncToLegacy(newCandidate.FirstName, newCandidate.LastName, newCandidate.Email)

	return candidate.NewCandidateResponse(newCandidate), nil
}

// syncToLegacy performs the fire-and-forget legacy notification. It runs
// detached from the request with its own context; a failure or panic here
// is logged and discarded, never surfaced to the create caller.
func (s *CandidateService) syncToLegacy(firstName, lastName string, email kernel.Email) {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("Failed to sync candidate %s to legacy API: %v", email, r)
		}
	}()

	outcome := s.legacySyncer.SendCandidate(context.Background(), firstName, lastName, email)
	if outcome.Success {
		logx.Infof("Candidate synced to legacy API: %s", email)
	} else {
		logx.Warnf("Legacy API sync failed for %s: %s", email, outcome.Error)
	}
}

// ListCandidatesPaginated retrieves one page of candidates, newest first,
// optionally filtered by status
func (s *CandidateService) ListCandidatesPaginated(ctx context.Context, page, limit int, status *candidate.RecruitmentStatus) (*candidate.PaginatedCandidatesResponse, error) {
	if page < 1 {
		return nil, candidate.ErrInvalidPage()
	}
	if limit < 1 || limit > maxPageLimit {
		return nil, candidate.ErrInvalidLimit()
	}

	req := candidate.ListCandidatesRequest{
		Pagination: kernel.PaginationOptions{Page: page, Limit: limit},
		Status:     status,
	}

	candidates, total, err := s.candidateRepo.List(ctx, req)
	if err != nil {
		logx.Errorf("Error fetching paginated candidates: %v", err)
		return nil, candidate.ErrRegistry.NewWithCause(candidate.CodeFetchFailed, err)
	}

	responses := make([]candidate.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		responses = append(responses, *candidate.NewCandidateResponse(&candidates[i]))
	}

	result := kernel.NewPaginated(responses, page, limit, total)
	return &result, nil
}

// ListCandidates retrieves all candidates, newest first
func (s *CandidateService) ListCandidates(ctx context.Context) ([]candidate.CandidateResponse, error) {
	candidates, err := s.candidateRepo.ListAll(ctx)
	if err != nil {
		logx.Errorf("Error fetching candidates: %v", err)
		return nil, candidate.ErrRegistry.NewWithCause(candidate.CodeFetchFailed, err)
	}

	return s.toResponses(candidates), nil
}

// GetCandidateByID retrieves a candidate by ID
func (s *CandidateService) GetCandidateByID(ctx context.Context, id kernel.CandidateID) (*candidate.CandidateResponse, error) {
	candidateEntity, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		logx.Errorf("Error fetching candidate with ID %d: %v", id.Int64(), err)
		return nil, candidate.ErrRegistry.NewWithCause(candidate.CodeFetchFailed, err)
	}

	return candidate.NewCandidateResponse(candidateEntity), nil
}

// GetCandidateByEmail retrieves a candidate by email. A miss yields
// (nil, nil) rather than an error.
func (s *CandidateService) GetCandidateByEmail(ctx context.Context, email kernel.Email) (*candidate.CandidateResponse, error) {
	candidateEntity, err := s.candidateRepo.GetByEmail(ctx, email)
	if err != nil {
		logx.Errorf("Error fetching candidate by email %s: %v", email, err)
		return nil, candidate.ErrRegistry.NewWithCause(candidate.CodeFetchFailed, err)
	}
	if candidateEntity == nil {
		return nil, nil
	}

	return candidate.NewCandidateResponse(candidateEntity), nil
}

// ListCandidatesByStatus retrieves all candidates in the given pipeline
// stage, newest first
func (s *CandidateService) ListCandidatesByStatus(ctx context.Context, status candidate.RecruitmentStatus) ([]candidate.CandidateResponse, error) {
	candidates, err := s.candidateRepo.ListByStatus(ctx, status)
	if err != nil {
		logx.Errorf("Error fetching candidates by status %s: %v", status, err)
		return nil, candidate.ErrRegistry.NewWithCause(candidate.CodeFetchFailed, err)
	}

	return s.toResponses(candidates), nil
}

// UpdateCandidate applies a partial update to an existing candidate.
// Fields absent from the request are left untouched.
func (s *CandidateService) UpdateCandidate(ctx context.Context, id kernel.CandidateID, req candidate.UpdateCandidateRequest) (*candidate.CandidateResponse, error) {
	if req.IsEmpty() {
		return nil, candidate.ErrEmptyUpdate()
	}

	candidateEntity, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		logx.Errorf("Error fetching candidate with ID %d: %v", id.Int64(), err)
		return nil, candidate.ErrRegistry.NewWithCause(candidate.CodeUpdateFailed, err)
	}

	// Uniqueness check only when the email actually changes; updating a
	// candidate to its own current email passes untouched.
	if req.Email != nil && *req.Email != candidateEntity.Email {
		other, err := s.candidateRepo.GetByEmail(ctx, *req.Email)
		if err != nil {
			logx.Errorf("Error checking candidate email %s: %v", *req.Email, err)
			return nil, candidate.ErrRegistry.NewWithCause(candidate.CodeUpdateFailed, err)
		}
		if other != nil && other.ID != id {
			return nil, candidate.ErrEmailInUse(*req.Email)
		}
		candidateEntity.Email = *req.Email
	}

	if req.FirstName != nil {
		candidateEntity.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		candidateEntity.LastName = *req.LastName
	}
	if req.Phone != nil {
		candidateEntity.Phone = *req.Phone
	}
	if req.YearsOfExperience != nil {
		candidateEntity.YearsOfExperience = *req.YearsOfExperience
	}
	if req.RecruiterNotes != nil {
		candidateEntity.RecruiterNotes = req.RecruiterNotes
	}
	if req.Status != nil {
		candidateEntity.Status = *req.Status
	}
	if req.ConsentDate != nil {
		candidateEntity.ConsentDate = *req.ConsentDate
	}
	candidateEntity.UpdatedAt = time.Now()

	if err := s.candidateRepo.Update(ctx, id, candidateEntity); err != nil {
		if e, ok := err.(*errx.Error); ok && e.Type != errx.TypeInternal {
			return nil, e
		}
		logx.Errorf("Error updating candidate with ID %d: %v", id.Int64(), err)
		return nil, candidate.ErrRegistry.NewWithCause(candidate.CodeUpdateFailed, err)
	}

	logx.Infof("Candidate with ID %d updated successfully", id.Int64())
	return candidate.NewCandidateResponse(candidateEntity), nil
}

// DeleteCandidate physically deletes a candidate
func (s *CandidateService) DeleteCandidate(ctx context.Context, id kernel.CandidateID) error {
	if _, err := s.candidateRepo.GetByID(ctx, id); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return err
		}
		logx.Errorf("Error fetching candidate with ID %d: %v", id.Int64(), err)
		return candidate.ErrRegistry.NewWithCause(candidate.CodeDeleteFailed, err)
	}

	if err := s.candidateRepo.Delete(ctx, id); err != nil {
		logx.Errorf("Error deleting candidate with ID %d: %v", id.Int64(), err)
		return candidate.ErrRegistry.NewWithCause(candidate.CodeDeleteFailed, err)
	}

	logx.Infof("Candidate with ID %d deleted successfully", id.Int64())
	return nil
}

func (s *CandidateService) toResponses(candidates []candidate.Candidate) []candidate.CandidateResponse {
	responses := make([]candidate.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		responses = append(responses, *candidate.NewCandidateResponse(&candidates[i]))
	}
	return responses
}
