package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// Response helpers for the error taxonomy. Internal error details are
// logged server-side and never leak into response bodies; users only
// ever see "fix this field" or a generic retry prompt.

// ValidationError returns a 400 for a request that failed to bind or
// validate, without field-level detail.
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] %s: %v", c.Request().URL.Path, err)
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "The request is invalid. Please check your input and try again.",
	})
}

// ValidationIssues returns a 400 carrying the field-scoped issues so
// the form can render inline errors.
func ValidationIssues(c echo.Context, issues []models.Issue) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Some fields need attention.",
		Issues:  issues,
	})
}

// BotCheckFailed returns a 400 for a failed bot-check challenge.
func BotCheckFailed(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bot_check_failed",
		Message: "Verification failed. Please retry the challenge.",
	})
}

// SubmissionFailed returns a 502 with the generic retry prompt. The
// underlying cause is logged; the user never sees it.
func SubmissionFailed(c echo.Context, err error) error {
	log.Printf("[SUBMISSION FAILED] %s: %v", c.Request().URL.Path, err)
	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "submission_failed",
		Message: "Submission failed. Please try again.",
	})
}

// NotFound returns a 404 for a missing resource.
func NotFound(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: resource + " not found",
	})
}

// InternalError returns a 500 with a generic message.
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] %s: %v", c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "Something went wrong. Please try again later.",
	})
}
