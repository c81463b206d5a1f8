package joboffer

import (
	"net/http"

	"github.com/talentflow/recruitment-api/pkg/errx"
	"github.com/talentflow/recruitment-api/pkg/kernel"
)

var ErrRegistry = errx.NewRegistry("JOB_OFFER")

// Error codes
var (
	CodeJobOfferNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job offer not found")
	CodeEmptyUpdate      = ErrRegistry.Register("EMPTY_UPDATE", errx.TypeValidation, http.StatusBadRequest, "At least one field must be provided for update")
	CodeInvalidRequest   = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request body")
	CodeValidationFailed = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")
	CodeCreateFailed     = ErrRegistry.Register("CREATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to create job offer")
	CodeFetchFailed      = ErrRegistry.Register("FETCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to fetch job offers")
	CodeUpdateFailed     = ErrRegistry.Register("UPDATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to update job offer")
	CodeDeleteFailed     = ErrRegistry.Register("DELETE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to delete job offer")
)

// Helper functions
func ErrJobOfferNotFound(id kernel.JobOfferID) *errx.Error {
	return ErrRegistry.New(CodeJobOfferNotFound).
		WithMessagef("job offer with id %d not found", id.Int64()).
		WithDetail("job_offer_id", id.Int64())
}

func ErrEmptyUpdate() *errx.Error {
	return ErrRegistry.New(CodeEmptyUpdate).
		WithMessagef("at least one field must be provided for update")
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
