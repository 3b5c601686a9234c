package handlers

import (
	gerrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/api/errors"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/captcha"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/metrics"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// CaptchaHandler handles the standalone bot-check endpoint
type CaptchaHandler struct {
	verifier  captcha.Verifier
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewCaptchaHandler creates a new captcha handler. metrics may be nil.
func NewCaptchaHandler(verifier captcha.Verifier, m *metrics.Metrics) *CaptchaHandler {
	return &CaptchaHandler{verifier: verifier, metrics: m, validator: validator.New()}
}

// Verify godoc
// @Summary Verify a captcha token
// @Description Runs the token through the bot-check provider. The response status is the only signal.
// @Tags Captcha
// @Accept json
// @Produce json
// @Param request body models.CaptchaRequest true "Captcha token"
// @Success 200 {object} map[string]bool "Token accepted"
// @Failure 400 {object} models.ErrorResponse "Token rejected"
// @Router /api/v1/verify-captcha [post]
func (h *CaptchaHandler) Verify(c echo.Context) error {
	var req models.CaptchaRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.verifier.Verify(c.Request().Context(), req.Captcha); err != nil {
		h.record(false)
		if gerrors.Is(err, captcha.ErrBotCheckFailed) {
			return errors.BotCheckFailed(c)
		}
		return errors.InternalError(c, err)
	}

	h.record(true)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *CaptchaHandler) record(passed bool) {
	if h.metrics != nil {
		h.metrics.RecordCaptcha(passed)
	}
}
