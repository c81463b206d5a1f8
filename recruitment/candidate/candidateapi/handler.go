package candidateapi

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/talentflow/recruitment-api/pkg/kernel"
	"github.com/talentflow/recruitment-api/recruitment/candidate"
	"github.com/talentflow/recruitment-api/recruitment/candidate/candidatesrv"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service  *candidatesrv.CandidateService
	validate *validator.Validate
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service:  service,
		validate: newValidator(),
	}
}

// newValidator builds a validator that reports field names from json tags
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateCandidate creates a new candidate
// POST /candidates
func (h *Handlers) CreateCandidate(c *fiber.Ctx) error {
	var req candidate.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return candidate.ErrValidationFailed().WithDetails(validationDetails(err))
	}

	newCandidate, err := h.service.CreateCandidate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newCandidate)
}

// ListCandidates retrieves candidates with pagination and an optional
// status filter
// GET /candidates?page=1&limit=10&status=NEW
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	page, err := queryIntParam(c, "page", 1)
	if err != nil {
		return err
	}
	limit, err := queryIntParam(c, "limit", 10)
	if err != nil {
		return err
	}

	var status *candidate.RecruitmentStatus
	if raw := c.Query("status"); raw != "" {
		s := candidate.RecruitmentStatus(raw)
		if !s.IsValid() {
			return candidate.ErrInvalidStatus(raw)
		}
		status = &s
	}

	candidates, err := h.service.ListCandidatesPaginated(c.Context(), page, limit, status)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// GetCandidateByID retrieves a candidate by ID
// GET /candidates/:id
func (h *Handlers) GetCandidateByID(c *fiber.Ctx) error {
	id, err := parseCandidateID(c)
	if err != nil {
		return err
	}

	candidateResp, err := h.service.GetCandidateByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(candidateResp)
}

// UpdateCandidate partially updates an existing candidate
// PATCH /candidates/:id
func (h *Handlers) UpdateCandidate(c *fiber.Ctx) error {
	id, err := parseCandidateID(c)
	if err != nil {
		return err
	}

	var req candidate.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return candidate.ErrValidationFailed().WithDetails(validationDetails(err))
	}

	updatedCandidate, err := h.service.UpdateCandidate(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updatedCandidate)
}

// DeleteCandidate deletes a candidate
// DELETE /candidates/:id
func (h *Handlers) DeleteCandidate(c *fiber.Ctx) error {
	id, err := parseCandidateID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCandidate(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ============================================================================
// Helper Functions
// ============================================================================

// queryIntParam reads a numeric query parameter. Absence yields the
// default; a non-numeric value is rejected, never defaulted.
func queryIntParam(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, candidate.ErrInvalidRequest().WithDetail(key, raw)
	}
	return v, nil
}

func parseCandidateID(c *fiber.Ctx) (kernel.CandidateID, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, candidate.ErrInvalidRequest().WithDetail("id", c.Params("id"))
	}
	return kernel.NewCandidateID(int64(id)), nil
}

// validationDetails flattens validator errors into per-field messages
func validationDetails(err error) map[string]any {
	details := make(map[string]any)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		details["error"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrs {
		details[fieldErr.Field()] = fieldErr.Tag()
	}
	return details
}

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/candidates")

	api.Post("/", handlers.CreateCandidate)
	api.Get("/", handlers.ListCandidates)
	api.Get("/:id", handlers.GetCandidateByID)
	api.Patch("/:id", handlers.UpdateCandidate)
	api.Delete("/:id", handlers.DeleteCandidate)
}
