package candidate

import (
	"net/http"

	"github.com/talentflow/recruitment-api/pkg/errx"
	"github.com/talentflow/recruitment-api/pkg/kernel"
)

var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeCandidateAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Candidate already exists")
	CodeEmailInUse             = ErrRegistry.Register("EMAIL_IN_USE", errx.TypeConflict, http.StatusConflict, "Email already in use")
	CodeInvalidReference       = ErrRegistry.Register("INVALID_REFERENCE", errx.TypeValidation, http.StatusBadRequest, "Invalid job offer or recruiter id")
	CodeEmptyUpdate            = ErrRegistry.Register("EMPTY_UPDATE", errx.TypeValidation, http.StatusBadRequest, "At least one field must be provided for update")
	CodeInvalidPage            = ErrRegistry.Register("INVALID_PAGE", errx.TypeValidation, http.StatusBadRequest, "Page must be greater than 0")
	CodeInvalidLimit           = ErrRegistry.Register("INVALID_LIMIT", errx.TypeValidation, http.StatusBadRequest, "Limit must be between 1 and 100")
	CodeInvalidStatus          = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid recruitment status")
	CodeInvalidRequest         = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request body")
	CodeValidationFailed       = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")
	CodeCreateFailed           = ErrRegistry.Register("CREATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to create candidate")
	CodeFetchFailed            = ErrRegistry.Register("FETCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to fetch candidates")
	CodeUpdateFailed           = ErrRegistry.Register("UPDATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to update candidate")
	CodeDeleteFailed           = ErrRegistry.Register("DELETE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to delete candidate")
)

// Helper functions
func ErrCandidateNotFound(id kernel.CandidateID) *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound).
		WithMessagef("candidate with id %d not found", id.Int64()).
		WithDetail("candidate_id", id.Int64())
}

func ErrCandidateAlreadyExists(email kernel.Email) *errx.Error {
	return ErrRegistry.New(CodeCandidateAlreadyExists).
		WithMessagef("candidate with email %s already exists", email).
		WithDetail("email", email.String())
}

func ErrEmailInUse(email kernel.Email) *errx.Error {
	return ErrRegistry.New(CodeEmailInUse).
		WithMessagef("email %s is already in use", email).
		WithDetail("email", email.String())
}

func ErrInvalidReference() *errx.Error {
	return ErrRegistry.New(CodeInvalidReference).
		WithMessagef("invalid job offer or recruiter id")
}

func ErrEmptyUpdate() *errx.Error {
	return ErrRegistry.New(CodeEmptyUpdate).
		WithMessagef("at least one field must be provided for update")
}

func ErrInvalidPage() *errx.Error {
	return ErrRegistry.New(CodeInvalidPage).
		WithMessagef("page must be greater than 0")
}

func ErrInvalidLimit() *errx.Error {
	return ErrRegistry.New(CodeInvalidLimit).
		WithMessagef("limit must be between 1 and 100")
}

func ErrInvalidStatus(status string) *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus).WithDetail("status", status)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
