package models

// WizardStartRequest opens a new wizard session for a lead kind.
type WizardStartRequest struct {
	Kind string `json:"kind" validate:"required"`
}

// WizardEventRequest applies one event to a wizard session.
// Type is one of: set_field, next, back, reset, verify_bot.
type WizardEventRequest struct {
	Type    string `json:"type" validate:"required,oneof=set_field next back reset verify_bot"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Captcha string `json:"captcha,omitempty"`
}

// WizardLocateRequest carries the device coordinates used to auto-fill
// the pincode field.
type WizardLocateRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// WizardSubmitRequest finalises a wizard session from its last step.
type WizardSubmitRequest struct {
	Captcha string `json:"captcha"`
}

// WizardStateResponse is the client-visible view of a session.
type WizardStateResponse struct {
	SessionID        string              `json:"session_id"`
	Kind             string              `json:"kind"`
	CurrentStep      int                 `json:"current_step"`
	TotalSteps       int                 `json:"total_steps"`
	Fields           Fields              `json:"fields"`
	BotVerified      bool                `json:"bot_verified"`
	DependentOptions map[string][]Option `json:"dependent_options,omitempty"`
	Issues           []Issue             `json:"issues,omitempty"`
}

// Option is a selectable entry in a dependent field's choice list.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
