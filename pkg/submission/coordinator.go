package submission

import (
	"context"
	"fmt"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/captcha"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/catalog"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/intake"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/logger"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/metrics"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/wizard"
)

// NotReadyError reports why a session cannot be submitted yet.
type NotReadyError struct {
	Issues []models.Issue
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("submission not ready (%d issues)", len(e.Issues))
}

// ProcessingError wraps a downstream processing failure. The session
// state is left exactly as it was so the user can retry.
type ProcessingError struct {
	Err error
}

func (e *ProcessingError) Error() string { return "lead processing failed: " + e.Err.Error() }
func (e *ProcessingError) Unwrap() error { return e.Err }

// SubmitResult is returned on a successful submission.
type SubmitResult struct {
	ReferenceID string `json:"reference_id"`
}

// Coordinator drives the submit path of a wizard session: readiness
// checks, bot verification, payload assembly, handoff to processing,
// and the post-success reset. Only a successful handoff mutates the
// session, and only if the session was not reset while the request
// was in flight.
type Coordinator struct {
	sessions   *wizard.Manager
	engine     *wizard.Engine
	verifier   captcha.Verifier
	processing ProcessingClient
	catalog    *catalog.Service
	log        logger.Logger
	metrics    *metrics.Metrics
}

func NewCoordinator(sessions *wizard.Manager, engine *wizard.Engine, verifier captcha.Verifier, processing ProcessingClient, catalogService *catalog.Service, log logger.Logger, m *metrics.Metrics) *Coordinator {
	return &Coordinator{
		sessions:   sessions,
		engine:     engine,
		verifier:   verifier,
		processing: processing,
		catalog:    catalogService,
		log:        log,
		metrics:    m,
	}
}

// VerifyBot runs the captcha token through the verifier and, on
// success, marks the session's bot check as passed. A failed check
// leaves the session untouched and returns captcha.ErrBotCheckFailed.
func (c *Coordinator) VerifyBot(ctx context.Context, sessionID, token string) (wizard.State, error) {
	session, err := c.sessions.Get(sessionID)
	if err != nil {
		return wizard.State{}, err
	}
	d, ok := forms.Get(session.State.Kind)
	if !ok {
		return wizard.State{}, fmt.Errorf("no form descriptor for kind %q", session.State.Kind)
	}

	if err := c.verifier.Verify(ctx, token); err != nil {
		c.recordCaptcha(false)
		return wizard.State{}, err
	}
	c.recordCaptcha(true)

	next, _ := wizard.Apply(d, session.State, wizard.Event{Type: wizard.EventVerifyBot})
	if err := c.sessions.Put(sessionID, next); err != nil {
		return wizard.State{}, err
	}
	return next, nil
}

// Submit validates readiness, hands the assembled payload to the
// processing client, and on acceptance resets the session to a fresh
// state so a new enquiry starts from step one.
func (c *Coordinator) Submit(ctx context.Context, sessionID, captchaToken string) (*SubmitResult, error) {
	session, err := c.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	state := session.State
	d, ok := forms.Get(state.Kind)
	if !ok {
		return nil, fmt.Errorf("no form descriptor for kind %q", state.Kind)
	}

	// Late bot check: a token supplied with the submit call counts the
	// same as an earlier verify_bot event.
	if d.RequireCaptcha && !state.BotVerified {
		if captchaToken == "" {
			return nil, captcha.ErrBotCheckFailed
		}
		if err := c.verifier.Verify(ctx, captchaToken); err != nil {
			c.recordCaptcha(false)
			return nil, err
		}
		c.recordCaptcha(true)
		state.BotVerified = true
	}

	if res := wizard.SubmitIssues(d, state); !res.Valid() {
		return nil, &NotReadyError{Issues: res.Issues}
	}

	// The attempt token pins this submission to the state it was built
	// from. If the user resets the wizard while the request is in
	// flight, the stale response is dropped on return.
	attempt := state.AttemptToken
	payload := c.assemblePayload(ctx, d, state)

	receipt, err := c.processing.Process(ctx, state.Kind, payload)
	if err != nil {
		c.log.Error("lead processing rejected submission",
			"kind", state.Kind,
			"session_id", sessionID,
			"error", err,
		)
		if c.metrics != nil {
			c.metrics.RecordSubmissionFailed(string(state.Kind), "processing")
		}
		return nil, &ProcessingError{Err: err}
	}

	referenceID := receipt.ReferenceID
	if referenceID == "" {
		// A processing endpoint that does not echo a reference id still
		// needs one for the confirmation response.
		referenceID = intake.NewReferenceID(state.Kind)
	}

	fresh := wizard.NewState(d)
	if !c.sessions.PutIfAttempt(sessionID, attempt, fresh) {
		c.log.Warn("discarding stale submission result",
			"kind", state.Kind,
			"session_id", sessionID,
			"reference_id", referenceID,
		)
	}

	c.log.Info("submission accepted",
		"kind", state.Kind,
		"session_id", sessionID,
		"reference_id", referenceID,
	)
	return &SubmitResult{ReferenceID: referenceID}, nil
}

// assemblePayload copies the collected fields and swaps catalog ids for
// their display names. Notifications and stored leads carry readable
// values like "Jupiter ZX Disc", not internal option ids.
func (c *Coordinator) assemblePayload(ctx context.Context, d *forms.Descriptor, state wizard.State) models.Fields {
	payload := state.Fields.Clone()
	for _, rule := range d.Dependents {
		options := state.DependentOptions[rule.OptionKey]
		for _, field := range rule.Resets {
			if id := payload[field]; id != "" {
				payload[field] = catalog.DisplayName(options, id)
			}
		}
		if rule.Lookup == forms.LookupVariants {
			if v, ok := c.catalog.VehicleByRef(ctx, payload[rule.Driver]); ok {
				payload[rule.Driver] = v.Name
			}
		}
	}
	return payload
}

func (c *Coordinator) recordCaptcha(passed bool) {
	if c.metrics != nil {
		c.metrics.RecordCaptcha(passed)
	}
}
