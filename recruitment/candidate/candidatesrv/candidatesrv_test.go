package candidatesrv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/recruitment-api/pkg/errx"
	"github.com/talentflow/recruitment-api/pkg/kernel"
	"github.com/talentflow/recruitment-api/recruitment/candidate"
)

// fakeRepository is an in-memory candidate.Repository for service tests.
type fakeRepository struct {
	candidates map[kernel.CandidateID]*candidate.Candidate
	nextID     int64

	createErr  error
	createdIDs []kernel.CandidateID
	deletedIDs []kernel.CandidateID
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		candidates: make(map[kernel.CandidateID]*candidate.Candidate),
		nextID:     1,
	}
}

func (r *fakeRepository) Create(_ context.Context, c *candidate.Candidate, _ kernel.JobOfferID) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.ID = kernel.NewCandidateID(r.nextID)
	r.nextID++
	copied := *c
	r.candidates[c.ID] = &copied
	r.createdIDs = append(r.createdIDs, c.ID)
	return nil
}

func (r *fakeRepository) Update(_ context.Context, id kernel.CandidateID, c *candidate.Candidate) error {
	if _, ok := r.candidates[id]; !ok {
		return candidate.ErrCandidateNotFound(id)
	}
	copied := *c
	r.candidates[id] = &copied
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound(id)
	}
	copied := *c
	return &copied, nil
}

func (r *fakeRepository) GetByEmail(_ context.Context, email kernel.Email) (*candidate.Candidate, error) {
	for _, c := range r.candidates {
		if c.Email == email {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRepository) Delete(_ context.Context, id kernel.CandidateID) error {
	if _, ok := r.candidates[id]; !ok {
		return candidate.ErrCandidateNotFound(id)
	}
	delete(r.candidates, id)
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

func (r *fakeRepository) List(_ context.Context, req candidate.ListCandidatesRequest) ([]candidate.Candidate, int, error) {
	all := r.filtered(req.Status)
	total := len(all)
	offset := req.Pagination.Offset()
	if offset >= total {
		return []candidate.Candidate{}, total, nil
	}
	end := offset + req.Pagination.Limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *fakeRepository) ListAll(_ context.Context) ([]candidate.Candidate, error) {
	return r.filtered(nil), nil
}

func (r *fakeRepository) ListByStatus(_ context.Context, status candidate.RecruitmentStatus) ([]candidate.Candidate, error) {
	return r.filtered(&status), nil
}

func (r *fakeRepository) filtered(status *candidate.RecruitmentStatus) []candidate.Candidate {
	out := make([]candidate.Candidate, 0, len(r.candidates))
	for id := r.nextID - 1; id >= 1; id-- {
		c, ok := r.candidates[kernel.NewCandidateID(id)]
		if !ok {
			continue
		}
		if status != nil && c.Status != *status {
			continue
		}
		out = append(out, *c)
	}
	return out
}

// fakeSyncer records sync attempts on a channel so tests can wait for the
// detached goroutine without sleeping.
type fakeSyncer struct {
	outcome candidate.SyncOutcome
	calls   chan kernel.Email
}

func newFakeSyncer(outcome candidate.SyncOutcome) *fakeSyncer {
	return &fakeSyncer{outcome: outcome, calls: make(chan kernel.Email, 8)}
}

func (s *fakeSyncer) SendCandidate(_ context.Context, _, _ string, email kernel.Email) candidate.SyncOutcome {
	s.calls <- email
	return s.outcome
}

func (s *fakeSyncer) HealthCheck(_ context.Context) bool { return true }

func (s *fakeSyncer) waitForCall(t *testing.T) kernel.Email {
	t.Helper()
	select {
	case email := <-s.calls:
		return email
	case <-time.After(2 * time.Second):
		t.Fatal("expected a legacy sync attempt")
		return ""
	}
}

func validCreateRequest() candidate.CreateCandidateRequest {
	return candidate.CreateCandidateRequest{
		FirstName:         "Jan",
		LastName:          "Kowalski",
		Email:             "jan.kowalski@example.com",
		Phone:             "+48123456789",
		YearsOfExperience: 5,
		ConsentDate:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		JobOfferID:        kernel.NewJobOfferID(1),
	}
}

func TestCreateCandidateDefaultsStatusToNew(t *testing.T) {
	repo := newFakeRepository()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: true})
	svc := NewCandidateService(repo, syncer)

	resp, err := svc.CreateCandidate(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, candidate.StatusNew, resp.Status)
	assert.Equal(t, int64(1), resp.ID.Int64())
	assert.Equal(t, kernel.Email("jan.kowalski@example.com"), resp.Email)
	syncer.waitForCall(t)
}

func TestCreateCandidateHonorsExplicitStatus(t *testing.T) {
	repo := newFakeRepository()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: true})
	svc := NewCandidateService(repo, syncer)

	req := validCreateRequest()
	status := candidate.StatusInterview
	req.Status = &status

	resp, err := svc.CreateCandidate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusInterview, resp.Status)
	syncer.waitForCall(t)
}

func TestCreateCandidateDuplicateEmailConflict(t *testing.T) {
	repo := newFakeRepository()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: true})
	svc := NewCandidateService(repo, syncer)

	_, err := svc.CreateCandidate(context.Background(), validCreateRequest())
	require.NoError(t, err)
	syncer.waitForCall(t)

	_, err = svc.CreateCandidate(context.Background(), validCreateRequest())
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, errx.TypeConflict, e.Type)
	assert.Equal(t, "candidate with email jan.kowalski@example.com already exists", e.Message)

	// The duplicate attempt must not write a second candidate.
	assert.Len(t, repo.createdIDs, 1)
	assert.Empty(t, syncer.calls)
}

func TestCreateCandidateInvalidReferencePassedThrough(t *testing.T) {
	repo := newFakeRepository()
	repo.createErr = candidate.ErrInvalidReference()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: true})
	svc := NewCandidateService(repo, syncer)

	_, err := svc.CreateCandidate(context.Background(), validCreateRequest())
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, errx.TypeValidation, e.Type)
	assert.Equal(t, "invalid job offer or recruiter id", e.Message)
	assert.Empty(t, syncer.calls)
}

func TestCreateCandidateSyncFailureDoesNotAffectResult(t *testing.T) {
	repo := newFakeRepository()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: false, Error: "connection refused"})
	svc := NewCandidateService(repo, syncer)

	resp, err := svc.CreateCandidate(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID.Int64())

	assert.Equal(t, kernel.Email("jan.kowalski@example.com"), syncer.waitForCall(t))
}

func TestListCandidatesPaginated(t *testing.T) {
	repo := newFakeRepository()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: true})
	svc := NewCandidateService(repo, syncer)

	for _, email := range []kernel.Email{"a@example.com", "b@example.com", "c@example.com"} {
		req := validCreateRequest()
		req.Email = email
		_, err := svc.CreateCandidate(context.Background(), req)
		require.NoError(t, err)
		syncer.waitForCall(t)
	}

	page, err := svc.ListCandidatesPaginated(context.Background(), 1, 2, nil)
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, 3, page.Meta.Total)
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.True(t, page.Meta.HasNextPage)
	assert.False(t, page.Meta.HasPreviousPage)
	// Newest first.
	assert.Equal(t, kernel.Email("c@example.com"), page.Data[0].Email)

	page2, err := svc.ListCandidatesPaginated(context.Background(), 2, 2, nil)
	require.NoError(t, err)
	assert.Len(t, page2.Data, 1)
	assert.False(t, page2.Meta.HasNextPage)
	assert.True(t, page2.Meta.HasPreviousPage)
}

func TestListCandidatesPaginatedValidation(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCandidateService(repo, newFakeSyncer(candidate.SyncOutcome{Success: true}))

	_, err := svc.ListCandidatesPaginated(context.Background(), 0, 10, nil)
	require.Error(t, err)
	assert.Equal(t, "page must be greater than 0", err.(*errx.Error).Message)

	for _, limit := range []int{0, -1, 101} {
		_, err := svc.ListCandidatesPaginated(context.Background(), 1, limit, nil)
		require.Error(t, err)
		assert.Equal(t, "limit must be between 1 and 100", err.(*errx.Error).Message)
	}
}

func TestListCandidatesPaginatedStatusFilter(t *testing.T) {
	repo := newFakeRepository()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: true})
	svc := NewCandidateService(repo, syncer)

	hired := candidate.StatusHired
	req := validCreateRequest()
	req.Status = &hired
	_, err := svc.CreateCandidate(context.Background(), req)
	require.NoError(t, err)
	syncer.waitForCall(t)

	req2 := validCreateRequest()
	req2.Email = "other@example.com"
	_, err = svc.CreateCandidate(context.Background(), req2)
	require.NoError(t, err)
	syncer.waitForCall(t)

	page, err := svc.ListCandidatesPaginated(context.Background(), 1, 10, &hired)
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 1, page.Meta.Total)
	assert.Equal(t, candidate.StatusHired, page.Data[0].Status)
}

func TestGetCandidateByIDNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCandidateService(repo, newFakeSyncer(candidate.SyncOutcome{Success: true}))

	_, err := svc.GetCandidateByID(context.Background(), kernel.NewCandidateID(42))
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, errx.TypeNotFound, e.Type)
	assert.Equal(t, "candidate with id 42 not found", e.Message)
}

func TestGetCandidateByEmailMissYieldsNil(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCandidateService(repo, newFakeSyncer(candidate.SyncOutcome{Success: true}))

	resp, err := svc.GetCandidateByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestUpdateCandidateEmptyRequest(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCandidateService(repo, newFakeSyncer(candidate.SyncOutcome{Success: true}))

	_, err := svc.UpdateCandidate(context.Background(), kernel.NewCandidateID(1), candidate.UpdateCandidateRequest{})
	require.Error(t, err)
	assert.Equal(t, "at least one field must be provided for update", err.(*errx.Error).Message)
}

func TestUpdateCandidateNotFoundBeforeConflictCheck(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCandidateService(repo, newFakeSyncer(candidate.SyncOutcome{Success: true}))

	email := kernel.Email("new@example.com")
	_, err := svc.UpdateCandidate(context.Background(), kernel.NewCandidateID(7), candidate.UpdateCandidateRequest{Email: &email})
	require.Error(t, err)
	assert.Equal(t, errx.TypeNotFound, err.(*errx.Error).Type)
}

func TestUpdateCandidatePartialMerge(t *testing.T) {
	repo := newFakeRepository()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: true})
	svc := NewCandidateService(repo, syncer)

	created, err := svc.CreateCandidate(context.Background(), validCreateRequest())
	require.NoError(t, err)
	syncer.waitForCall(t)

	notes := "strong golang background"
	status := candidate.StatusInProgress
	resp, err := svc.UpdateCandidate(context.Background(), created.ID, candidate.UpdateCandidateRequest{
		RecruiterNotes: &notes,
		Status:         &status,
	})
	require.NoError(t, err)

	assert.Equal(t, candidate.StatusInProgress, resp.Status)
	require.NotNil(t, resp.RecruiterNotes)
	assert.Equal(t, notes, *resp.RecruiterNotes)
	// Untouched fields stay as created.
	assert.Equal(t, created.FirstName, resp.FirstName)
	assert.Equal(t, created.Email, resp.Email)
	assert.Equal(t, created.YearsOfExperience, resp.YearsOfExperience)
}

func TestUpdateCandidateEmailConflict(t *testing.T) {
	repo := newFakeRepository()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: true})
	svc := NewCandidateService(repo, syncer)

	first, err := svc.CreateCandidate(context.Background(), validCreateRequest())
	require.NoError(t, err)
	syncer.waitForCall(t)

	req := validCreateRequest()
	req.Email = "taken@example.com"
	_, err = svc.CreateCandidate(context.Background(), req)
	require.NoError(t, err)
	syncer.waitForCall(t)

	taken := kernel.Email("taken@example.com")
	_, err = svc.UpdateCandidate(context.Background(), first.ID, candidate.UpdateCandidateRequest{Email: &taken})
	require.Error(t, err)

	e, ok := err.(*errx.Error)
	require.True(t, ok)
	assert.Equal(t, errx.TypeConflict, e.Type)
	assert.Equal(t, "email taken@example.com is already in use", e.Message)
}

func TestUpdateCandidateSameEmailPasses(t *testing.T) {
	repo := newFakeRepository()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: true})
	svc := NewCandidateService(repo, syncer)

	created, err := svc.CreateCandidate(context.Background(), validCreateRequest())
	require.NoError(t, err)
	syncer.waitForCall(t)

	same := created.Email
	resp, err := svc.UpdateCandidate(context.Background(), created.ID, candidate.UpdateCandidateRequest{Email: &same})
	require.NoError(t, err)
	assert.Equal(t, same, resp.Email)
}

func TestDeleteCandidate(t *testing.T) {
	repo := newFakeRepository()
	syncer := newFakeSyncer(candidate.SyncOutcome{Success: true})
	svc := NewCandidateService(repo, syncer)

	created, err := svc.CreateCandidate(context.Background(), validCreateRequest())
	require.NoError(t, err)
	syncer.waitForCall(t)

	require.NoError(t, svc.DeleteCandidate(context.Background(), created.ID))
	assert.Equal(t, []kernel.CandidateID{created.ID}, repo.deletedIDs)

	_, err = svc.GetCandidateByID(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, errx.TypeNotFound, err.(*errx.Error).Type)
}

func TestDeleteCandidateNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCandidateService(repo, newFakeSyncer(candidate.SyncOutcome{Success: true}))

	err := svc.DeleteCandidate(context.Background(), kernel.NewCandidateID(99))
	require.Error(t, err)
	assert.Equal(t, errx.TypeNotFound, err.(*errx.Error).Type)
	assert.Empty(t, repo.deletedIDs)
}
