package models

// ErrorResponse is the standard error body returned by the API
type ErrorResponse struct {
	Error   string  `json:"error"`
	Message string  `json:"message,omitempty"`
	Issues  []Issue `json:"issues,omitempty"`
}

// Issue names a single field-scoped validation problem.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CaptchaRequest is the body for POST /api/v1/verify-captcha
type CaptchaRequest struct {
	Captcha string `json:"captcha" validate:"required"`
}
