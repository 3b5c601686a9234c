package handlers

import (
	"context"
	gerrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/api/errors"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/captcha"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/catalog"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/submission"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/wizard"
)

// WizardHandler handles wizard session endpoints
type WizardHandler struct {
	sessions    *wizard.Manager
	engine      *wizard.Engine
	coordinator *submission.Coordinator
	catalog     *catalog.Service
	validator   *validator.Validate
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(sessions *wizard.Manager, engine *wizard.Engine, coordinator *submission.Coordinator, catalogService *catalog.Service) *WizardHandler {
	return &WizardHandler{
		sessions:    sessions,
		engine:      engine,
		coordinator: coordinator,
		catalog:     catalogService,
		validator:   validator.New(),
	}
}

// Start godoc
// @Summary Start a wizard session
// @Description Opens a new multi-step form session for the given kind.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body models.WizardStartRequest true "Form kind"
// @Success 201 {object} models.WizardStateResponse "New session"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Unknown form kind"
// @Router /api/v1/wizard [post]
func (h *WizardHandler) Start(c echo.Context) error {
	var req models.WizardStartRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	d, ok := forms.Get(models.Kind(req.Kind))
	if !ok {
		return errors.NotFound(c, "form kind")
	}

	session := h.sessions.Start(d)
	return c.JSON(http.StatusCreated, stateResponse(session.ID, d, session.State, nil))
}

// Get godoc
// @Summary Fetch a wizard session
// @Description Returns the current state of a session, including step validity.
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} models.WizardStateResponse "Session state"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /api/v1/wizard/{id} [get]
func (h *WizardHandler) Get(c echo.Context) error {
	session, d, err := h.load(c.Param("id"))
	if err != nil {
		return errors.NotFound(c, "wizard session")
	}

	res := wizard.StepIssues(d, session.State)
	return c.JSON(http.StatusOK, stateResponse(session.ID, d, session.State, res.Issues))
}

// Events godoc
// @Summary Apply a wizard event
// @Description Applies one event (set_field, next, back, reset, verify_bot) to the session. Invalid transitions return the unchanged state with issues.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body models.WizardEventRequest true "Event"
// @Success 200 {object} models.WizardStateResponse "Resulting state"
// @Failure 400 {object} models.ErrorResponse "Invalid request or failed bot check"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /api/v1/wizard/{id}/events [post]
func (h *WizardHandler) Events(c echo.Context) error {
	var req models.WizardEventRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	id := c.Param("id")
	session, d, err := h.load(id)
	if err != nil {
		return errors.NotFound(c, "wizard session")
	}

	ctx := c.Request().Context()

	if wizard.EventType(req.Type) == wizard.EventVerifyBot {
		state, err := h.coordinator.VerifyBot(ctx, id, req.Captcha)
		if err != nil {
			if gerrors.Is(err, captcha.ErrBotCheckFailed) {
				return errors.BotCheckFailed(c)
			}
			if gerrors.Is(err, wizard.ErrSessionNotFound) {
				return errors.NotFound(c, "wizard session")
			}
			return errors.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, stateResponse(id, d, state, nil))
	}

	ev := wizard.Event{Type: wizard.EventType(req.Type), Field: req.Field, Value: req.Value}
	next, res := h.engine.ApplyEvent(ctx, d, session.State, ev)
	if err := h.sessions.Put(id, next); err != nil {
		return errors.NotFound(c, "wizard session")
	}
	return c.JSON(http.StatusOK, stateResponse(id, d, next, res.Issues))
}

// Submit godoc
// @Summary Submit a wizard session
// @Description Hands the collected fields to lead processing. On success the session resets to a fresh first step.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body models.WizardSubmitRequest false "Optional captcha token"
// @Success 200 {object} submission.SubmitResult "Reference id"
// @Failure 400 {object} models.ErrorResponse "Not ready or failed bot check"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 502 {object} models.ErrorResponse "Processing failed"
// @Router /api/v1/wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c echo.Context) error {
	var req models.WizardSubmitRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	result, err := h.coordinator.Submit(c.Request().Context(), c.Param("id"), req.Captcha)
	if err != nil {
		var notReady *submission.NotReadyError
		var processing *submission.ProcessingError
		switch {
		case gerrors.Is(err, wizard.ErrSessionNotFound):
			return errors.NotFound(c, "wizard session")
		case gerrors.Is(err, captcha.ErrBotCheckFailed):
			return errors.BotCheckFailed(c)
		case gerrors.As(err, &notReady):
			return errors.ValidationIssues(c, notReady.Issues)
		case gerrors.As(err, &processing):
			return errors.SubmissionFailed(c, processing.Err)
		default:
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, result)
}

// Locate godoc
// @Summary Auto-fill pincode from coordinates
// @Description Maps device coordinates to the nearest dealer pincode and applies it as if typed, repopulating the dealer list.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body models.WizardLocateRequest true "Coordinates"
// @Success 200 {object} models.WizardStateResponse "Resulting state"
// @Failure 400 {object} models.ErrorResponse "Invalid coordinates"
// @Failure 404 {object} models.ErrorResponse "Session not found or no dealer coverage"
// @Router /api/v1/wizard/{id}/locate [post]
func (h *WizardHandler) Locate(c echo.Context) error {
	var req models.WizardLocateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	id := c.Param("id")
	session, d, err := h.load(id)
	if err != nil {
		return errors.NotFound(c, "wizard session")
	}

	locator := &coordinateLocator{catalog: h.catalog, lat: req.Latitude, lng: req.Longitude}
	next, res, err := h.engine.AutoLocate(c.Request().Context(), d, session.State, locator)
	if err != nil {
		return errors.NotFound(c, "dealer coverage")
	}
	if err := h.sessions.Put(id, next); err != nil {
		return errors.NotFound(c, "wizard session")
	}
	return c.JSON(http.StatusOK, stateResponse(id, d, next, res.Issues))
}

func (h *WizardHandler) load(id string) (wizard.Session, *forms.Descriptor, error) {
	session, err := h.sessions.Get(id)
	if err != nil {
		return wizard.Session{}, nil, err
	}
	d, ok := forms.Get(session.State.Kind)
	if !ok {
		return wizard.Session{}, nil, wizard.ErrSessionNotFound
	}
	return session, d, nil
}

// coordinateLocator resolves coordinates against the dealer catalog.
type coordinateLocator struct {
	catalog *catalog.Service
	lat     float64
	lng     float64
}

func (l *coordinateLocator) ResolvePincode(ctx context.Context) (string, error) {
	pincode, ok := l.catalog.NearestPincode(ctx, l.lat, l.lng)
	if !ok {
		return "", gerrors.New("no dealers available for location lookup")
	}
	return pincode, nil
}

func stateResponse(id string, d *forms.Descriptor, s wizard.State, issues []models.Issue) models.WizardStateResponse {
	return models.WizardStateResponse{
		SessionID:        id,
		Kind:             string(s.Kind),
		CurrentStep:      s.CurrentStep,
		TotalSteps:       d.TotalSteps(),
		Fields:           s.Fields,
		BotVerified:      s.BotVerified,
		DependentOptions: s.DependentOptions,
		Issues:           issues,
	}
}
