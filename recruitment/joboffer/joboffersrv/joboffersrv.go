package joboffersrv

import (
	"context"
	"time"

	"github.com/talentflow/recruitment-api/pkg/errx"
	"github.com/talentflow/recruitment-api/pkg/kernel"
	"github.com/talentflow/recruitment-api/pkg/logx"
	"github.com/talentflow/recruitment-api/recruitment/joboffer"
)

// JobOfferService provides business operations for job offers
type JobOfferService struct {
	jobOfferRepo joboffer.Repository
}

// NewJobOfferService creates a new instance of the job offer service
func NewJobOfferService(jobOfferRepo joboffer.Repository) *JobOfferService {
	return &JobOfferService{
		jobOfferRepo: jobOfferRepo,
	}
}

// CreateJobOffer creates a new job offer
func (s *JobOfferService) CreateJobOffer(ctx context.Context, req joboffer.CreateJobOfferRequest) (*joboffer.JobOfferResponse, error) {
	now := time.Now()
	newOffer := &joboffer.JobOffer{
		Title:       req.Title,
		Description: req.Description,
		SalaryRange: req.SalaryRange,
		Location:    req.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.jobOfferRepo.Create(ctx, newOffer); err != nil {
		logx.Errorf("Error creating job offer: %v", err)
		return nil, joboffer.ErrRegistry.NewWithCause(joboffer.CodeCreateFailed, err)
	}

	logx.Infof("Job offer created successfully with ID %d", newOffer.ID.Int64())
	return joboffer.NewJobOfferResponse(newOffer), nil
}

// ListJobOffers retrieves all job offers, newest first
func (s *JobOfferService) ListJobOffers(ctx context.Context) ([]joboffer.JobOfferResponse, error) {
	offers, err := s.jobOfferRepo.ListAll(ctx)
	if err != nil {
		logx.Errorf("Error fetching job offers: %v", err)
		return nil, joboffer.ErrRegistry.NewWithCause(joboffer.CodeFetchFailed, err)
	}

	responses := make([]joboffer.JobOfferResponse, 0, len(offers))
	for i := range offers {
		responses = append(responses, *joboffer.NewJobOfferResponse(&offers[i]))
	}
	return responses, nil
}

// GetJobOfferByID retrieves a job offer by ID
func (s *JobOfferService) GetJobOfferByID(ctx context.Context, id kernel.JobOfferID) (*joboffer.JobOfferResponse, error) {
	offer, err := s.jobOfferRepo.GetByID(ctx, id)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		logx.Errorf("Error fetching job offer with ID %d: %v", id.Int64(), err)
		return nil, joboffer.ErrRegistry.NewWithCause(joboffer.CodeFetchFailed, err)
	}

	return joboffer.NewJobOfferResponse(offer), nil
}

// UpdateJobOffer applies a partial update to an existing job offer
func (s *JobOfferService) UpdateJobOffer(ctx context.Context, id kernel.JobOfferID, req joboffer.UpdateJobOfferRequest) (*joboffer.JobOfferResponse, error) {
	if req.IsEmpty() {
		return nil, joboffer.ErrEmptyUpdate()
	}

	offer, err := s.jobOfferRepo.GetByID(ctx, id)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		logx.Errorf("Error fetching job offer with ID %d: %v", id.Int64(), err)
		return nil, joboffer.ErrRegistry.NewWithCause(joboffer.CodeUpdateFailed, err)
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.SalaryRange != nil {
		offer.SalaryRange = req.SalaryRange
	}
	if req.Location != nil {
		offer.Location = req.Location
	}
	offer.UpdatedAt = time.Now()

	if err := s.jobOfferRepo.Update(ctx, id, offer); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		logx.Errorf("Error updating job offer with ID %d: %v", id.Int64(), err)
		return nil, joboffer.ErrRegistry.NewWithCause(joboffer.CodeUpdateFailed, err)
	}

	logx.Infof("Job offer with ID %d updated successfully", id.Int64())
	return joboffer.NewJobOfferResponse(offer), nil
}

// DeleteJobOffer physically deletes a job offer
func (s *JobOfferService) DeleteJobOffer(ctx context.Context, id kernel.JobOfferID) error {
	if _, err := s.jobOfferRepo.GetByID(ctx, id); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return err
		}
		logx.Errorf("Error fetching job offer with ID %d: %v", id.Int64(), err)
		return joboffer.ErrRegistry.NewWithCause(joboffer.CodeDeleteFailed, err)
	}

	if err := s.jobOfferRepo.Delete(ctx, id); err != nil {
		logx.Errorf("Error deleting job offer with ID %d: %v", id.Int64(), err)
		return joboffer.ErrRegistry.NewWithCause(joboffer.CodeDeleteFailed, err)
	}

	logx.Infof("Job offer with ID %d deleted successfully", id.Int64())
	return nil
}
