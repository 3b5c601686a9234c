package models

import "time"

// Kind identifies which lead schema, step layout and notification
// template set applies to a submission.
type Kind string

const (
	KindTestRide       Kind = "test-ride"
	KindAMC            Kind = "amc"
	KindLoan           Kind = "loan"
	KindExchange       Kind = "exchange"
	KindInsurance      Kind = "insurance"
	KindServiceBooking Kind = "service-booking"
	KindCareer         Kind = "career"
	KindSuggestion     Kind = "suggestion"
)

// Kinds lists every supported lead kind.
func Kinds() []Kind {
	return []Kind{
		KindTestRide,
		KindAMC,
		KindLoan,
		KindExchange,
		KindInsurance,
		KindServiceBooking,
		KindCareer,
		KindSuggestion,
	}
}

// Fields maps a field name to the raw value captured from the form.
// Values are kept as strings; numeric and boolean coercion is a
// validation concern.
type Fields map[string]string

// Clone returns a deep copy so callers can mutate freely.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// LeadSubmission is the generic envelope for any accepted lead.
// ReferenceID is assigned exactly once at acceptance and is immutable
// afterwards; it correlates every downstream notification.
type LeadSubmission struct {
	Kind        Kind      `json:"kind"`
	Fields      Fields    `json:"fields"`
	ReferenceID string    `json:"reference_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeadAcceptedResponse is returned by the processing endpoint on success.
type LeadAcceptedResponse struct {
	ReferenceID string    `json:"reference_id"`
	CreatedAt   time.Time `json:"created_at"`
}
