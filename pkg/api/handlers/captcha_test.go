package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/captcha"
)

func captchaRequest(t *testing.T, body string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify-captcha", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestCaptchaVerifyAccepted(t *testing.T) {
	h := NewCaptchaHandler(captcha.StaticVerifier{}, nil)

	rec, c := captchaRequest(t, `{"captcha":"ok-token"}`)
	require.NoError(t, h.Verify(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestCaptchaVerifyMissingToken(t *testing.T) {
	h := NewCaptchaHandler(captcha.StaticVerifier{}, nil)

	rec, c := captchaRequest(t, `{}`)
	require.NoError(t, h.Verify(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
}

func TestCaptchaVerifyRejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad token", http.StatusBadRequest)
	}))
	defer server.Close()

	h := NewCaptchaHandler(captcha.New(server.URL), nil)

	rec, c := captchaRequest(t, `{"captcha":"rejected"}`)
	require.NoError(t, h.Verify(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bot_check_failed")
}
