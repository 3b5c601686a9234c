package wizard

import (
	"context"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/catalog"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/logger"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/validation"
)

// Locator resolves the caller's location to a pincode. The real
// implementation sits in front of a geolocation provider; tests use a
// stub. Resolution is cancelable through ctx.
type Locator interface {
	ResolvePincode(ctx context.Context) (string, error)
}

// Engine runs the step machine for a descriptor and keeps dependent
// option lists in sync with their driver fields. The pure transition
// lives in Apply; the engine layers the catalog lookups on top.
type Engine struct {
	catalog *catalog.Service
	log     logger.Logger
}

// NewEngine creates an engine backed by the given catalog.
func NewEngine(catalogService *catalog.Service, log logger.Logger) *Engine {
	return &Engine{catalog: catalogService, log: log}
}

// ApplyEvent advances the state machine and, for driver-field changes,
// recomputes the dependent option lists.
func (e *Engine) ApplyEvent(ctx context.Context, d *forms.Descriptor, s State, ev Event) (State, validation.Result) {
	next, res := Apply(d, s, ev)
	if !res.Valid() {
		return next, res
	}

	if ev.Type == EventSetField {
		next = e.resolveDependents(ctx, d, next, ev.Field)
	}
	return next, res
}

// AutoLocate resolves a pincode via the locator and applies it as if
// the user had typed it, populating the dealer list through the same
// dependent-field rule. A canceled context aborts without touching the
// state.
func (e *Engine) AutoLocate(ctx context.Context, d *forms.Descriptor, s State, locator Locator) (State, validation.Result, error) {
	pincode, err := locator.ResolvePincode(ctx)
	if err != nil {
		return s, validation.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return s, validation.Result{}, err
	}
	next, res := e.ApplyEvent(ctx, d, s, Event{Type: EventSetField, Field: "pincode", Value: pincode})
	return next, res, nil
}

// resolveDependents repopulates the option lists driven by the changed
// field. Apply has already cleared stale options and selections; this
// only fills in fresh lists when the driver value qualifies.
func (e *Engine) resolveDependents(ctx context.Context, d *forms.Descriptor, s State, driver string) State {
	value := s.Fields[driver]
	for _, rule := range d.DependentsFor(driver) {
		if value == "" || (rule.MinLen > 0 && len(value) < rule.MinLen) {
			continue
		}

		var options = s.DependentOptions[rule.OptionKey]
		switch rule.Lookup {
		case forms.LookupVariants:
			options = e.catalog.VariantsFor(ctx, value)
		case forms.LookupDealers:
			options = e.catalog.DealersFor(ctx, value)
		}
		if len(options) > 0 {
			s.DependentOptions[rule.OptionKey] = options
		}
	}
	return s
}
