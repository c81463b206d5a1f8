package jobofferapi

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/talentflow/recruitment-api/pkg/kernel"
	"github.com/talentflow/recruitment-api/recruitment/joboffer"
	"github.com/talentflow/recruitment-api/recruitment/joboffer/joboffersrv"
)

// Handlers provides HTTP handlers for job offer operations
type Handlers struct {
	service  *joboffersrv.JobOfferService
	validate *validator.Validate
}

// NewHandlers creates a new job offer handlers instance
func NewHandlers(service *joboffersrv.JobOfferService) *Handlers {
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

// CreateJobOffer creates a new job offer
// POST /job-offers
func (h *Handlers) CreateJobOffer(c *fiber.Ctx) error {
	var req joboffer.CreateJobOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return joboffer.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return joboffer.ErrValidationFailed().WithDetails(validationDetails(err))
	}

	newOffer, err := h.service.CreateJobOffer(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newOffer)
}

// ListJobOffers retrieves all job offers
// GET /job-offers
func (h *Handlers) ListJobOffers(c *fiber.Ctx) error {
	offers, err := h.service.ListJobOffers(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(offers)
}

// GetJobOfferByID retrieves a job offer by ID
// GET /job-offers/:id
func (h *Handlers) GetJobOfferByID(c *fiber.Ctx) error {
	id, err := parseJobOfferID(c)
	if err != nil {
		return err
	}

	offer, err := h.service.GetJobOfferByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(offer)
}

// UpdateJobOffer partially updates an existing job offer
// PATCH /job-offers/:id
func (h *Handlers) UpdateJobOffer(c *fiber.Ctx) error {
	id, err := parseJobOfferID(c)
	if err != nil {
		return err
	}

	var req joboffer.UpdateJobOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return joboffer.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return joboffer.ErrValidationFailed().WithDetails(validationDetails(err))
	}

	updatedOffer, err := h.service.UpdateJobOffer(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updatedOffer)
}

// DeleteJobOffer deletes a job offer
// DELETE /job-offers/:id
func (h *Handlers) DeleteJobOffer(c *fiber.Ctx) error {
	id, err := parseJobOfferID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteJobOffer(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ============================================================================
// Helper Functions
// ============================================================================

func parseJobOfferID(c *fiber.Ctx) (kernel.JobOfferID, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, joboffer.ErrInvalidRequest().WithDetail("id", c.Params("id"))
	}
	return kernel.NewJobOfferID(int64(id)), nil
}

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

// RegisterRoutes registers all job offer routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/job-offers")

	api.Post("/", handlers.CreateJobOffer)
	api.Get("/", handlers.ListJobOffers)
	api.Get("/:id", handlers.GetJobOfferByID)
	api.Patch("/:id", handlers.UpdateJobOffer)
	api.Delete("/:id", handlers.DeleteJobOffer)
}
