package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

func newTestContext(t *testing.T, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestValidationErrorHidesDetail(t *testing.T) {
	buf := captureLog(t)
	c, rec := newTestContext(t, "/api/v1/leads/test-ride")

	require.NoError(t, ValidationError(c, errors.New("strconv.Atoi: parsing \"x\"")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "validation_error", body.Error)
	assert.NotContains(t, rec.Body.String(), "strconv")

	assert.Contains(t, buf.String(), "[VALIDATION ERROR]")
	assert.Contains(t, buf.String(), "/api/v1/leads/test-ride")
	assert.Contains(t, buf.String(), "strconv.Atoi")
}

func TestValidationIssuesCarriesFields(t *testing.T) {
	c, rec := newTestContext(t, "/api/v1/leads/test-ride")

	issues := []models.Issue{
		{Field: "phone", Message: "phone number must be a valid Indian mobile number"},
	}
	require.NoError(t, ValidationIssues(c, issues))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "validation_error", body.Error)
	require.Len(t, body.Issues, 1)
	assert.Equal(t, "phone", body.Issues[0].Field)
}

func TestBotCheckFailed(t *testing.T) {
	c, rec := newTestContext(t, "/api/v1/wizard/abc/submit")

	require.NoError(t, BotCheckFailed(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bot_check_failed", decodeError(t, rec).Error)
}

func TestSubmissionFailedHidesCause(t *testing.T) {
	buf := captureLog(t)
	c, rec := newTestContext(t, "/api/v1/wizard/abc/submit")

	require.NoError(t, SubmissionFailed(c, errors.New("dial tcp 10.0.0.4:443: timeout")))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "submission_failed", body.Error)
	assert.NotContains(t, rec.Body.String(), "10.0.0.4")

	assert.Contains(t, buf.String(), "[SUBMISSION FAILED]")
}

func TestNotFound(t *testing.T) {
	c, rec := newTestContext(t, "/api/v1/wizard/missing")

	require.NoError(t, NotFound(c, "wizard session"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "not_found", body.Error)
	assert.Equal(t, "wizard session not found", body.Message)
}

func TestInternalErrorHidesCause(t *testing.T) {
	buf := captureLog(t)
	c, rec := newTestContext(t, "/api/v1/leads/amc")

	require.NoError(t, InternalError(c, errors.New("redis: connection pool exhausted")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "internal_error", body.Error)
	assert.NotContains(t, rec.Body.String(), "redis")

	assert.Contains(t, buf.String(), "[INTERNAL ERROR]")
}
