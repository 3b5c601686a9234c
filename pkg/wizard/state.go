package wizard

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/validation"
)

// EventType enumerates wizard events.
type EventType string

const (
	EventSetField  EventType = "set_field"
	EventNext      EventType = "next"
	EventBack      EventType = "back"
	EventReset     EventType = "reset"
	EventVerifyBot EventType = "verify_bot"
)

// Event is one input to the step machine.
type Event struct {
	Type  EventType
	Field string
	Value string
}

// State is the ephemeral wizard state for one form session. It is a
// value type: Apply never mutates its input, so already-completed steps
// survive Back/Next round-trips untouched.
type State struct {
	Kind             models.Kind
	CurrentStep      int
	Fields           models.Fields
	BotVerified      bool
	DependentOptions map[string][]models.Option

	// AttemptToken changes on Reset. In-flight submissions carry the
	// token they started with; a late response whose token no longer
	// matches is discarded instead of being applied to a state the
	// user already abandoned.
	AttemptToken string
}

// NewState creates the initial state for a descriptor.
func NewState(d *forms.Descriptor) State {
	return State{
		Kind:             d.Kind,
		CurrentStep:      1,
		Fields:           models.Fields{},
		DependentOptions: map[string][]models.Option{},
		AttemptToken:     uuid.NewString(),
	}
}

func (s State) clone() State {
	out := s
	out.Fields = s.Fields.Clone()
	out.DependentOptions = make(map[string][]models.Option, len(s.DependentOptions))
	for k, v := range s.DependentOptions {
		opts := make([]models.Option, len(v))
		copy(opts, v)
		out.DependentOptions[k] = opts
	}
	return out
}

// Apply is the pure transition function (state, event) -> state. An
// event that cannot be applied returns the input state unchanged along
// with the issues explaining why; that is the normal gating path, not
// an error.
//
// Dependent option lists are cleared here when their driver changes;
// recomputing them needs catalog lookups and is the Engine's job.
func Apply(d *forms.Descriptor, s State, ev Event) (State, validation.Result) {
	switch ev.Type {
	case EventSetField:
		return applySetField(d, s, ev)

	case EventNext:
		if s.CurrentStep >= d.TotalSteps() {
			return s, issue("", "already on the final step")
		}
		res := stepValidity(d, s)
		if !res.Valid() {
			return s, res
		}
		next := s.clone()
		next.CurrentStep++
		return next, validation.Result{}

	case EventBack:
		if s.CurrentStep <= 1 {
			return s, validation.Result{}
		}
		next := s.clone()
		next.CurrentStep--
		return next, validation.Result{}

	case EventReset:
		return NewState(d), validation.Result{}

	case EventVerifyBot:
		next := s.clone()
		next.BotVerified = true
		return next, validation.Result{}

	default:
		return s, issue("", fmt.Sprintf("unknown event type %q", ev.Type))
	}
}

func applySetField(d *forms.Descriptor, s State, ev Event) (State, validation.Result) {
	if !d.Schema.Has(ev.Field) {
		return s, issue(ev.Field, "unknown field")
	}

	next := s.clone()
	changed := next.Fields[ev.Field] != ev.Value
	if ev.Value == "" {
		delete(next.Fields, ev.Field)
	} else {
		next.Fields[ev.Field] = ev.Value
	}

	if changed {
		// A changed driver invalidates downstream selections outright,
		// even when the new option list would contain the same id.
		for _, rule := range d.DependentsFor(ev.Field) {
			delete(next.DependentOptions, rule.OptionKey)
			for _, reset := range rule.Resets {
				delete(next.Fields, reset)
			}
		}
	}

	return next, validation.Result{}
}

// StepIssues reports the validity of the current step, including the
// bot-check gate on the final step of captcha-protected forms.
func StepIssues(d *forms.Descriptor, s State) validation.Result {
	return stepValidity(d, s)
}

// SubmitIssues reports whether the accumulated fields are ready for
// submission: last step, full schema valid, bot check completed.
func SubmitIssues(d *forms.Descriptor, s State) validation.Result {
	if s.CurrentStep != d.TotalSteps() {
		return issue("", "submission is only allowed from the final step")
	}
	res := d.Validate(s.Fields)
	if d.RequireCaptcha && !s.BotVerified {
		res.Issues = append(res.Issues, models.Issue{Field: "captcha", Message: "bot check must be completed"})
	}
	return res
}

func stepValidity(d *forms.Descriptor, s State) validation.Result {
	res := d.ValidateStep(s.Fields, s.CurrentStep)
	if s.CurrentStep == d.TotalSteps() && d.RequireCaptcha && !s.BotVerified {
		res.Issues = append(res.Issues, models.Issue{Field: "captcha", Message: "bot check must be completed"})
	}
	return res
}

func issue(field, msg string) validation.Result {
	return validation.Result{Issues: []models.Issue{{Field: field, Message: msg}}}
}
