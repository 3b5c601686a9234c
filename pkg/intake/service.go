package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/logger"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/metrics"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/notification"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/store"
)

// ValidationFailedError carries the field issues for a rejected payload.
type ValidationFailedError struct {
	Issues []models.Issue
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("lead payload failed validation (%d issues)", len(e.Issues))
}

// Service is the processing side of lead acceptance: it validates the
// assembled payload authoritatively, assigns the reference id, stores
// the lead, and hands it to the notification dispatcher. The reference
// id always exists before any notification job is constructed.
type Service struct {
	store      store.Store
	dispatcher *notification.Dispatcher
	log        logger.Logger
	metrics    *metrics.Metrics
}

// NewService creates a new intake service. metrics may be nil.
func NewService(s store.Store, d *notification.Dispatcher, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{store: s, dispatcher: d, log: log, metrics: m}
}

// Accept validates and stores a lead, then fires the notification
// fan-out asynchronously. The returned submission already carries its
// reference id; dispatch failures never affect the result.
func (s *Service) Accept(ctx context.Context, kind models.Kind, fields models.Fields) (*models.LeadSubmission, error) {
	d, ok := forms.Get(kind)
	if !ok {
		return nil, fmt.Errorf("unknown lead kind %q", kind)
	}

	// A submission is never partially valid: the full schema including
	// cross-field refinements must pass at acceptance time, regardless
	// of what the client validated along the way.
	if res := d.Validate(fields); !res.Valid() {
		s.recordFailure(kind, "validation")
		return nil, &ValidationFailedError{Issues: res.Issues}
	}

	lead := &models.LeadSubmission{
		Kind:        kind,
		Fields:      fields.Clone(),
		ReferenceID: NewReferenceID(kind),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.Save(ctx, lead); err != nil {
		s.recordFailure(kind, "store")
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	s.log.Info("lead accepted",
		"kind", kind,
		"reference_id", lead.ReferenceID,
	)
	if s.metrics != nil {
		s.metrics.RecordSubmissionAccepted(string(kind))
	}

	// Fire-and-forget: the caller gets its reference id without
	// waiting on any provider.
	s.dispatcher.DispatchAsync(lead)

	return lead, nil
}

func (s *Service) recordFailure(kind models.Kind, reason string) {
	if s.metrics != nil {
		s.metrics.RecordSubmissionFailed(string(kind), reason)
	}
}

// NewReferenceID mints a correlation key for an accepted lead, e.g.
// TVS-TR-7F3A2B1C. The kind prefix makes reference ids readable in
// support conversations.
func NewReferenceID(kind models.Kind) string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("TVS-%s-%s", kindCode(kind), short)
}

func kindCode(kind models.Kind) string {
	switch kind {
	case models.KindTestRide:
		return "TR"
	case models.KindAMC:
		return "AM"
	case models.KindLoan:
		return "LN"
	case models.KindExchange:
		return "EX"
	case models.KindInsurance:
		return "IN"
	case models.KindServiceBooking:
		return "SB"
	case models.KindCareer:
		return "CA"
	case models.KindSuggestion:
		return "SG"
	default:
		return "LD"
	}
}
