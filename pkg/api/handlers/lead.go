package handlers

import (
	gerrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/api/errors"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/intake"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// LeadHandler handles direct lead submission endpoints
type LeadHandler struct {
	intakeService *intake.Service
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(intakeService *intake.Service) *LeadHandler {
	return &LeadHandler{intakeService: intakeService}
}

// Create godoc
// @Summary Submit a lead enquiry
// @Description Accepts a fully assembled enquiry payload for one form kind, validates it and queues notifications.
// @Tags Leads
// @Accept json
// @Produce json
// @Param kind path string true "Form kind (test-ride, amc, loan, exchange, insurance, service-booking, career, suggestion)"
// @Param payload body models.Fields true "Field name to value map"
// @Success 201 {object} models.LeadAcceptedResponse "Lead accepted"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 404 {object} models.ErrorResponse "Unknown form kind"
// @Router /api/v1/leads/{kind} [post]
func (h *LeadHandler) Create(c echo.Context) error {
	kind := models.Kind(c.Param("kind"))
	if _, ok := forms.Get(kind); !ok {
		return errors.NotFound(c, "form kind")
	}

	fields := models.Fields{}
	if err := c.Bind(&fields); err != nil {
		return errors.ValidationError(c, err)
	}

	lead, err := h.intakeService.Accept(c.Request().Context(), kind, fields)
	if err != nil {
		var vErr *intake.ValidationFailedError
		if gerrors.As(err, &vErr) {
			return errors.ValidationIssues(c, vErr.Issues)
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.LeadAcceptedResponse{
		ReferenceID: lead.ReferenceID,
		CreatedAt:   lead.CreatedAt,
	})
}
